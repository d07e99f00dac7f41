package result

import (
	"errors"

	"github.com/perfective/ts.common-sub001/pkg/fp/predicate"
)

// BiMap pairs a value mapper with an error mapper.
type BiMap[T, U any] struct {
	Value func(T) U
	Error func(error) error
}

// Bind calls flatMap with the value of a Success. A Failure is carried over
// to the new value type and flatMap is not called.
func Bind[T, U any](r Result[T], flatMap func(T) Result[U]) Result[U] {
	if r.variant == VariantFailure {
		return Failure[U](r.err)
	}
	return flatMap(r.value)
}

// Map applies mapValue to the value of a Success and rewraps it as a Success.
func Map[T, U any](r Result[T], mapValue func(T) U) Result[U] {
	return MapBoth(r, mapValue, nil)
}

// MapBoth maps a Success with mapValue and a Failure with mapError. A nil
// mapError leaves the error unchanged.
func MapBoth[T, U any](r Result[T], mapValue func(T) U, mapError func(error) error) Result[U] {
	if r.variant == VariantSuccess {
		return Success(mapValue(r.value))
	}
	if mapError == nil {
		return Failure[U](r.err)
	}
	return Failure[U](mapError(r.err))
}

func MapPair[T, U any](r Result[T], pair BiMap[T, U]) Result[U] {
	return MapBoth(r, pair.Value, pair.Error)
}

// Reduce collapses r with the callback that matches its variant.
func Reduce[T, U any](r Result[T], onValue func(T) U, onError func(error) U) U {
	if r.variant == VariantFailure {
		return onError(r.err)
	}
	return onValue(r.value)
}

// Collapse collapses r with a single reducer that receives both the value and
// the error; exactly one of them is meaningful.
func Collapse[T, U any](r Result[T], reduce func(T, error) U) U {
	return reduce(r.value, r.err)
}

// Narrow turns a Success into the narrowed value, or Failure(err) when the
// guard rejects it.
func Narrow[T, U any](r Result[T], guard predicate.TypeGuard[T, U], err error) Result[U] {
	if r.variant == VariantFailure {
		return Failure[U](r.err)
	}
	if u, ok := guard(r.value); ok {
		return Success(u)
	}
	return Failure[U](err)
}

// NarrowMessage is Narrow with a new exception built from template, as in
// Result.ThatMessage.
func NarrowMessage[T, U any](r Result[T], guard predicate.TypeGuard[T, U], template string) Result[U] {
	if r.variant == VariantFailure {
		return Failure[U](r.err)
	}
	if u, ok := guard(r.value); ok {
		return Success(u)
	}
	return Failure[U](valueException(template, r.value))
}

// Collect returns every value when all results succeed. Otherwise it fails
// with the errors.Join of every failure, in order.
func Collect[T any](rs ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	var errs []error

	for _, r := range rs {
		if r.variant == VariantFailure {
			errs = append(errs, r.err)
			continue
		}
		values = append(values, r.value)
	}

	if len(errs) > 0 {
		return Failure[[]T](errors.Join(errs...))
	}
	return Success(values)
}

func Onto[T, U any](flatMap func(T) Result[U]) func(Result[T]) Result[U] {
	return func(r Result[T]) Result[U] {
		return Bind(r, flatMap)
	}
}

func To[T, U any](mapValue func(T) U, mapError func(error) error) func(Result[T]) Result[U] {
	return func(r Result[T]) Result[U] {
		return MapBoth(r, mapValue, mapError)
	}
}

func Into[T, U any](onValue func(T) U, onError func(error) U) func(Result[T]) U {
	return func(r Result[T]) U {
		return Reduce(r, onValue, onError)
	}
}

func That[T any](filter predicate.Predicate[T], err error) func(Result[T]) Result[T] {
	return func(r Result[T]) Result[T] {
		return r.That(filter, err)
	}
}

func Which[T, U any](guard predicate.TypeGuard[T, U], err error) func(Result[T]) Result[U] {
	return func(r Result[T]) Result[U] {
		return Narrow(r, guard, err)
	}
}

func Run[T any](onValue func(T)) func(Result[T]) Result[T] {
	return func(r Result[T]) Result[T] {
		return r.Run(onValue)
	}
}

func Through[T any](onValue func(T), onError func(error)) func(Result[T]) Result[T] {
	return func(r Result[T]) Result[T] {
		return r.Through(onValue, onError)
	}
}
