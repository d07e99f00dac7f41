package chain

import (
	"context"
	"errors"
	"strconv"

	"github.com/apex/log"

	"github.com/perfective/ts.common-sub001/pkg/fp/exception"
	"github.com/perfective/ts.common-sub001/pkg/fp/result"
)

// Chain pairs a result.Result with the context its steps run in.
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T]
}

// Start creates a new chain from a result.Result
func Start[T any](ctx context.Context, r result.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, result.Success(v))
}

func (c Chain[T]) Result() result.Result[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then composes a step that keeps the value type
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) result.Result[T]) Chain[T] {
	return Then(c, onSuccess)
}

// ThenTry composes a (T, error) step that keeps the value type
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return ThenTry(c, try)
}

// Map transforms the successful value without changing its type
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Map(c, onSuccess)
}

// Then chains a function that returns result.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) result.Result[U]) Chain[U] {
	if r, ok := proceed[T, U](c); !ok {
		return Chain[U]{ctx: c.ctx, res: r}
	}

	r := onSuccess(c.ctx, c.res.Value())
	if r.IsFailure() {
		logFailure(c.ctx, r.Err())
	}
	return Chain[U]{ctx: c.ctx, res: r}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Then(c, func(ctx context.Context, t T) result.Result[U] {
		u, err := tryOnSuccess(ctx, t)
		return result.From(u, err)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Then(c, func(ctx context.Context, t T) result.Result[U] {
		return result.Success(onSuccess(ctx, t))
	})
}

// RepeatUntil runs onSuccess at least once and again until done holds for
// the new value.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) result.Result[T],
	done func(ctx context.Context, t T) bool) Chain[T] {

	maxRepeats := GetMaxRepeats(c.ctx, DefaultMaxRepeats)
	for i := 0; ; i++ {
		if i >= maxRepeats {
			return c.exceeded(maxRepeats)
		}

		c = c.Then(onSuccess)
		if c.res.IsFailure() || done(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// While runs onSuccess for as long as while holds for the current value.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) result.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	maxRepeats := GetMaxRepeats(c.ctx, DefaultMaxRepeats)
	for i := 0; c.res.IsSuccess() && while(c.ctx, c.res.Value()); i++ {
		if i >= maxRepeats {
			return c.exceeded(maxRepeats)
		}
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T]) exceeded(maxRepeats int) Chain[T] {
	err := exception.New("Chain exceeded {{max}} repeats",
		exception.Tokens{"max": strconv.Itoa(maxRepeats)},
		exception.Context{"value": c.res.Value()})
	logFailure(c.ctx, err)
	return Chain[T]{ctx: c.ctx, res: result.Failure[T](err)}
}

// Or returns the first successful chain among c and the alternatives, or c
// when none succeeds.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and the required chains, or the
// last one when all succeed.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain into a final value using result.Reduce
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return result.Reduce(c.res,
		func(t T) U { return onSuccess(c.ctx, t) },
		func(err error) U { return onFailure(c.ctx, err) })
}

// IsCancellation reports whether err was caused by a cancelled or expired
// context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// proceed reports whether a step may run on c. When it may not, it returns
// the failure to carry forward at the new value type.
func proceed[T, U any](c Chain[T]) (result.Result[U], bool) {
	if c.res.IsFailure() {
		return result.Failure[U](c.res.Err()), false
	}
	if err := c.ctx.Err(); err != nil {
		cancelled := exception.CausedBy(err, "Chain cancelled", nil, nil)
		logFailure(c.ctx, cancelled)
		return result.Failure[U](cancelled), false
	}
	return result.Result[U]{}, true
}

func logFailure(ctx context.Context, err error) {
	log.FromContext(ctx).WithError(err).Debug("chain: step failed")
}
