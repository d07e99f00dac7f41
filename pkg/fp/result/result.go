package result

import (
	"fmt"

	"github.com/perfective/ts.common-sub001/pkg/fp/exception"
	"github.com/perfective/ts.common-sub001/pkg/fp/maybe"
	"github.com/perfective/ts.common-sub001/pkg/fp/predicate"
)

// Variant tags the shape held by a Result.
type Variant int

const (
	// VariantSuccess is the zero Variant: the zero Result is a Success
	// holding the zero T.
	VariantSuccess Variant = iota
	VariantFailure
)

func (v Variant) String() string {
	switch v {
	case VariantSuccess:
		return "Success"
	case VariantFailure:
		return "Failure"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Result is either a Success holding a value or a Failure holding an error.
type Result[T any] struct {
	value   T
	err     error
	variant Variant
}

// Success wraps v. An error value is kept as data, not treated as a failure.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, variant: VariantSuccess}
}

// Failure wraps err. A nil err is a programming error and panics with a
// TypeError exception.
func Failure[T any](err error) Result[T] {
	if predicate.IsNil(err) {
		panic(exception.NewTypeError("Failure requires a non-nil error, got {{type}}",
			exception.Tokens{"type": fmt.Sprintf("%T", err)}, nil))
	}
	return Result[T]{err: err, variant: VariantFailure}
}

// Of returns a Failure when v is a non-nil error and a Success otherwise.
func Of[T any](v T) Result[T] {
	if err, ok := any(v).(error); ok && !predicate.IsNil(err) {
		return Failure[T](err)
	}
	return Success(v)
}

// From converts a (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Try calls f and converts its outcome. A panic inside f is recovered and
// normalized with exception.Unknown into a Failure.
func Try[T any](f func() (T, error)) (r Result[T]) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r = Failure[T](exception.Unknown(recovered))
		}
	}()

	v, err := f()
	return From(v, err)
}

// FromMaybe returns a Success for a present value and Failure(err) otherwise.
func FromMaybe[T any](m maybe.Maybe[T], err error) Result[T] {
	if v, ok := m.Get(); ok {
		return Success(v)
	}
	return Failure[T](err)
}

func (r Result[T]) Variant() Variant {
	return r.variant
}

func (r Result[T]) IsSuccess() bool {
	return r.variant == VariantSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.variant == VariantFailure
}

// Value returns the success value, or the zero T for a Failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the causing error, or nil for a Success.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Must returns the success value and panics with the error of a Failure.
func (r Result[T]) Must() T {
	if r.variant == VariantFailure {
		exception.Throw(r.err)
	}
	return r.value
}

// Otherwise returns the success value or the fallback computed from the
// error. The fallback is only called for a Failure.
func (r Result[T]) Otherwise(fallback func(error) T) T {
	if r.variant == VariantFailure {
		return fallback(r.err)
	}
	return r.value
}

// Maybe drops the error: a Success goes through maybe.Of, a Failure is Nothing.
func (r Result[T]) Maybe() maybe.Maybe[T] {
	if r.variant == VariantFailure {
		return maybe.Nothing[T]()
	}
	return maybe.Of(r.value)
}

// String renders a Success as Success(v) and a Failure as its error chain.
func (r Result[T]) String() string {
	if r.variant == VariantFailure {
		return exception.ChainString(r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}

// Onto is Bind for functions that keep the value type.
func (r Result[T]) Onto(flatMap func(T) Result[T]) Result[T] {
	return Bind(r, flatMap)
}

// To maps the value of a Success, or the error of a Failure when mapError is
// not nil.
func (r Result[T]) To(mapValue func(T) T, mapError func(error) error) Result[T] {
	return MapBoth(r, mapValue, mapError)
}

// That turns a Success whose value fails the predicate into Failure(err).
func (r Result[T]) That(filter predicate.Predicate[T], err error) Result[T] {
	if r.variant == VariantFailure || filter(r.value) {
		return r
	}
	return Failure[T](err)
}

// ThatMessage is That with a new exception built from template. The value is
// available to the template as {{value}} and kept in the context.
func (r Result[T]) ThatMessage(filter predicate.Predicate[T], template string) Result[T] {
	if r.variant == VariantFailure || filter(r.value) {
		return r
	}
	return Failure[T](valueException(template, r.value))
}

// Run calls onValue for a Success and returns the receiver.
func (r Result[T]) Run(onValue func(T)) Result[T] {
	return r.Through(onValue, nil)
}

// Through calls onValue for a Success or onError for a Failure and returns
// the receiver. Nil callbacks are skipped.
func (r Result[T]) Through(onValue func(T), onError func(error)) Result[T] {
	if r.variant == VariantFailure {
		if onError != nil {
			onError(r.err)
		}
		return r
	}
	if onValue != nil {
		onValue(r.value)
	}
	return r
}

// MapError rewrites the error of a Failure. A Success is returned as is.
func (r Result[T]) MapError(mapError func(error) error) Result[T] {
	if r.variant == VariantSuccess {
		return r
	}
	return Failure[T](mapError(r.err))
}

func valueException(template string, v any) *exception.Exception {
	return exception.New(template, exception.Tokens{"value": fmt.Sprint(v)}, exception.Context{"value": v})
}
