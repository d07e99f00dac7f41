package maybe

import (
	"fmt"

	"github.com/perfective/ts.common-sub001/pkg/fp/fn"
	"github.com/perfective/ts.common-sub001/pkg/fp/predicate"
)

// Kind tags the variant held by a Maybe.
type Kind int

const (
	// KindNothing is the zero Kind, so the zero Maybe is Nothing.
	KindNothing Kind = iota
	KindNil
	KindJust
)

func (k Kind) String() string {
	switch k {
	case KindJust:
		return "Just"
	case KindNil:
		return "Nil"
	case KindNothing:
		return "Nothing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Maybe holds a value of type T or one of two kinds of absence.
type Maybe[T any] struct {
	value T
	kind  Kind
}

// Just wraps v as present without inspecting it.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, kind: KindJust}
}

// Nothing is the absence of a value that was never provided.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{kind: KindNothing}
}

// Nil is the absence of a value that was explicitly cleared.
func Nil[T any]() Maybe[T] {
	return Maybe[T]{kind: KindNil}
}

// Of returns Nil for a nil pointer, map, slice, channel, func or interface
// and Just for anything else.
func Of[T any](v T) Maybe[T] {
	if predicate.IsNil(v) {
		return Nil[T]()
	}
	return Just(v)
}

// FromOK treats !ok as Nothing and otherwise behaves like Of. It fits the
// comma-ok idiom of map lookups and type assertions.
func FromOK[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Of(v)
}

// Optional treats only !ok as absence; a nil value is kept as present.
func Optional[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

// Nullable treats only nil as absence. Go has a single nil, so it is Of.
func Nullable[T any](v T) Maybe[T] {
	return Of(v)
}

func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nil[T]()
	}
	return Just(*p)
}

func (m Maybe[T]) Kind() Kind {
	return m.kind
}

func (m Maybe[T]) IsJust() bool {
	return m.kind == KindJust
}

func (m Maybe[T]) IsPresent() bool {
	return m.kind == KindJust
}

func (m Maybe[T]) IsNothing() bool {
	return m.kind == KindNothing
}

func (m Maybe[T]) IsNil() bool {
	return m.kind == KindNil
}

func (m Maybe[T]) IsAbsent() bool {
	return m.kind != KindJust
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.kind == KindJust
}

// Value returns the wrapped value, or the zero T when absent.
func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) String() string {
	if m.kind == KindJust {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return m.kind.String()
}

// Match calls the handler for the held variant. Nil handlers are skipped.
func (m Maybe[T]) Match(onJust func(T), onNothing func(), onNil func()) {
	switch m.kind {
	case KindJust:
		if onJust != nil {
			onJust(m.value)
		}
	case KindNil:
		if onNil != nil {
			onNil()
		}
	default:
		if onNothing != nil {
			onNothing()
		}
	}
}

// Onto is Bind for functions that keep the element type.
func (m Maybe[T]) Onto(flatMap func(T) Maybe[T]) Maybe[T] {
	return Bind(m, flatMap)
}

// To is Map for functions that keep the element type.
func (m Maybe[T]) To(mapValue func(T) T) Maybe[T] {
	return Map(m, mapValue)
}

// That keeps a present value that satisfies the predicate. A present value
// that fails it becomes Nothing; an absent receiver is returned as is.
func (m Maybe[T]) That(filter predicate.Predicate[T]) Maybe[T] {
	if m.kind != KindJust {
		return m
	}
	if filter(m.value) {
		return m
	}
	return Nothing[T]()
}

// When keeps the receiver when the condition holds and yields Nothing
// otherwise, whether or not a value is present.
func (m Maybe[T]) When(condition func() bool) Maybe[T] {
	if condition() {
		return m
	}
	return Nothing[T]()
}

// Otherwise returns the present value, or calls fallback. The fallback is not
// called when the value is present, so a panicking fallback is a valid
// "require or panic" idiom.
func (m Maybe[T]) Otherwise(fallback fn.Nullary[T]) T {
	if m.kind == KindJust {
		return m.value
	}
	return fallback()
}

func (m Maybe[T]) Or(fallback fn.Nullary[T]) T {
	return m.Otherwise(fallback)
}

// OrNil returns a pointer to a copy of the value, or nil when absent.
func (m Maybe[T]) OrNil() *T {
	if m.kind != KindJust {
		return nil
	}
	v := m.value
	return &v
}

// OrNothing is Get: the value, or the zero T and false when absent.
func (m Maybe[T]) OrNothing() (T, bool) {
	return m.Get()
}

func (m Maybe[T]) OrZero() T {
	if m.kind != KindJust {
		var zero T
		return zero
	}
	return m.value
}

// Run calls procedure with a present value and returns the receiver.
func (m Maybe[T]) Run(procedure fn.Procedure[T]) Maybe[T] {
	if m.kind == KindJust {
		procedure(m.value)
	}
	return m
}

// NilAsNothing folds Nil into Nothing, leaving a single "not provided"
// absence for chains that do not care about explicit clearing.
func (m Maybe[T]) NilAsNothing() Maybe[T] {
	if m.kind == KindNil {
		return Nothing[T]()
	}
	return m
}

// NothingAsNil folds Nothing into Nil.
func (m Maybe[T]) NothingAsNil() Maybe[T] {
	if m.kind == KindNothing {
		return Nil[T]()
	}
	return m
}

// absentAs carries the absence kind of m over to another element type.
func absentAs[T, U any](m Maybe[T]) Maybe[U] {
	return Maybe[U]{kind: m.kind}
}
