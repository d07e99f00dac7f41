package fn

// Nullary produces a value on demand. Fallbacks take a Nullary so that the
// value is only computed on the absent or failed path.
type Nullary[T any] func() T

// Unary maps one value to another.
type Unary[T, U any] func(T) U

// Procedure consumes a value for its side effect.
type Procedure[T any] func(T)

func Identity[T any](v T) T {
	return v
}

// Constant returns a Nullary that always yields v.
func Constant[T any](v T) Nullary[T] {
	return func() T {
		return v
	}
}

// Compose returns g after f.
func Compose[A, B, C any](f Unary[A, B], g Unary[B, C]) Unary[A, C] {
	return func(a A) C {
		return g(f(a))
	}
}
