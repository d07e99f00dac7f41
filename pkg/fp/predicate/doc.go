// Package predicate contains the primitive type guards (nil, zero, error)
// that the maybe and result containers route on, and boolean combinators
// to build filters for That and Which.
package predicate
