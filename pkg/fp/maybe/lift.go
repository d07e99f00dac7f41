package maybe

import (
	"github.com/perfective/ts.common-sub001/pkg/fp/fn"
	"github.com/perfective/ts.common-sub001/pkg/fp/predicate"
)

// Bind calls flatMap with a present value and returns its result. An absent
// input keeps its absence kind and flatMap is not called.
func Bind[T, U any](m Maybe[T], flatMap func(T) Maybe[U]) Maybe[U] {
	if m.kind != KindJust {
		return absentAs[T, U](m)
	}
	return flatMap(m.value)
}

// Map applies mapValue to a present value and wraps the result with Of, so a
// nil result becomes Nil.
func Map[T, U any](m Maybe[T], mapValue func(T) U) Maybe[U] {
	if m.kind != KindJust {
		return absentAs[T, U](m)
	}
	return Of(mapValue(m.value))
}

// MapOK is Map for comma-ok functions: !ok yields Nothing.
func MapOK[T, U any](m Maybe[T], mapValue func(T) (U, bool)) Maybe[U] {
	if m.kind != KindJust {
		return absentAs[T, U](m)
	}
	u, ok := mapValue(m.value)
	return FromOK(u, ok)
}

// Pick looks up key in a present map. A missing key is Nothing and a nil
// entry is Nil.
func Pick[K comparable, V any](m Maybe[map[K]V], key K) Maybe[V] {
	if m.kind != KindJust {
		return absentAs[map[K]V, V](m)
	}
	v, ok := m.value[key]
	return FromOK(v, ok)
}

// Index returns the element at position. Negative positions do not wrap
// around: they and out of range positions yield Nothing.
func Index[E any](m Maybe[[]E], position int) Maybe[E] {
	if m.kind != KindJust {
		return absentAs[[]E, E](m)
	}
	if position < 0 || position >= len(m.value) {
		return Nothing[E]()
	}
	return Of(m.value[position])
}

// Narrow is That with a type guard. A present value the guard rejects becomes
// Nothing; an absent input keeps its kind.
func Narrow[T, U any](m Maybe[T], guard predicate.TypeGuard[T, U]) Maybe[U] {
	if m.kind != KindJust {
		return absentAs[T, U](m)
	}
	if u, ok := guard(m.value); ok {
		return Just(u)
	}
	return Nothing[U]()
}

// Apply passes the raw value and kind to lift whatever the variant and wraps
// the result with Of. It is the only operation that sees an absent value.
func Apply[T, U any](m Maybe[T], lift func(value T, kind Kind) U) Maybe[U] {
	return Of(lift(m.value, m.kind))
}

// IsPresentOf reports presence as a present bool.
func IsPresentOf[T any](m Maybe[T]) Maybe[bool] {
	return Apply(m, func(_ T, kind Kind) bool {
		return kind == KindJust
	})
}

// First returns the first present Maybe, or Nothing.
func First[T any](ms ...Maybe[T]) Maybe[T] {
	for _, m := range ms {
		if m.kind == KindJust {
			return m
		}
	}
	return Nothing[T]()
}

// Values keeps the present values in order.
func Values[T any](ms []Maybe[T]) []T {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.kind == KindJust {
			out = append(out, m.value)
		}
	}
	return out
}

func Onto[T, U any](flatMap func(T) Maybe[U]) func(Maybe[T]) Maybe[U] {
	return func(m Maybe[T]) Maybe[U] {
		return Bind(m, flatMap)
	}
}

func To[T, U any](mapValue func(T) U) func(Maybe[T]) Maybe[U] {
	return func(m Maybe[T]) Maybe[U] {
		return Map(m, mapValue)
	}
}

func Picked[K comparable, V any](key K) func(Maybe[map[K]V]) Maybe[V] {
	return func(m Maybe[map[K]V]) Maybe[V] {
		return Pick(m, key)
	}
}

func Indexed[E any](position int) func(Maybe[[]E]) Maybe[E] {
	return func(m Maybe[[]E]) Maybe[E] {
		return Index(m, position)
	}
}

func That[T any](filter predicate.Predicate[T]) func(Maybe[T]) Maybe[T] {
	return func(m Maybe[T]) Maybe[T] {
		return m.That(filter)
	}
}

func Which[T, U any](guard predicate.TypeGuard[T, U]) func(Maybe[T]) Maybe[U] {
	return func(m Maybe[T]) Maybe[U] {
		return Narrow(m, guard)
	}
}

func When[T any](condition func() bool) func(Maybe[T]) Maybe[T] {
	return func(m Maybe[T]) Maybe[T] {
		return m.When(condition)
	}
}

func Otherwise[T any](fallback fn.Nullary[T]) func(Maybe[T]) T {
	return func(m Maybe[T]) T {
		return m.Otherwise(fallback)
	}
}

func Or[T any](fallback fn.Nullary[T]) func(Maybe[T]) T {
	return func(m Maybe[T]) T {
		return m.Or(fallback)
	}
}

func Run[T any](procedure fn.Procedure[T]) func(Maybe[T]) Maybe[T] {
	return func(m Maybe[T]) Maybe[T] {
		return m.Run(procedure)
	}
}

func Lift[T, U any](lift func(value T, kind Kind) U) func(Maybe[T]) Maybe[U] {
	return func(m Maybe[T]) Maybe[U] {
		return Apply(m, lift)
	}
}
