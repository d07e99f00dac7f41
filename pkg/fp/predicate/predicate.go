package predicate

import (
	"errors"
	"reflect"
)

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// TypeGuard narrows a value of type T to U, reporting whether it could.
type TypeGuard[T, U any] func(T) (U, bool)

// IsNil reports whether i is a nil interface or an interface holding a nil
// pointer, map, slice, channel, function or interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func IsNotNil(i any) bool {
	return !IsNil(i)
}

func IsZero[T comparable](v T) bool {
	var zero T
	return v == zero
}

// IsError reports whether i is a non-nil error.
func IsError(i any) bool {
	err, ok := i.(error)
	return ok && !IsNil(err)
}

func Is[T comparable](expected T) Predicate[T] {
	return func(v T) bool {
		return v == expected
	}
}

func IsNot[T comparable](unexpected T) Predicate[T] {
	return Not(Is(unexpected))
}

func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// All holds when every predicate holds. An empty list always holds.
func All[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Any holds when at least one predicate holds. An empty list never holds.
func Any[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

func None[T any](ps ...Predicate[T]) Predicate[T] {
	return Not(Any(ps...))
}

// TypeOf narrows an any to U by type assertion.
func TypeOf[U any]() TypeGuard[any, U] {
	return func(v any) (U, bool) {
		u, ok := v.(U)
		return u, ok
	}
}

// ErrorAs narrows an error to E, following the Unwrap chain.
func ErrorAs[E error]() TypeGuard[error, E] {
	return func(err error) (E, bool) {
		var target E
		if err == nil {
			return target, false
		}
		ok := errors.As(err, &target)
		return target, ok
	}
}
