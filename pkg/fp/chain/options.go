package chain

import "context"

type OptionKey string

const (
	RepeatOptionKey OptionKey = "repeat_options"

	// DefaultMaxRepeats bounds RepeatUntil and While when the context
	// carries no RepeatOptions.
	DefaultMaxRepeats = 1000
)

type MaxLimitOption struct {
	Value int
}

type RepeatOptions struct {
	MaxCount MaxLimitOption
}

func WithMaxRepeats(ctx context.Context, maxRepeats int) context.Context {
	return context.WithValue(ctx, RepeatOptionKey, RepeatOptions{MaxLimitOption{Value: maxRepeats}})
}

func GetMaxRepeats(ctx context.Context, defaultMaxRepeats int) int {
	options, ok := ctx.Value(RepeatOptionKey).(RepeatOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxRepeats
}
