// Package maybe provides Maybe[T], a container for a value that may be
// absent in one of two ways: Nothing ("not provided") or Nil ("explicitly
// cleared"). The distinction survives chaining, so a value mapped from an
// external payload can still tell a missing field from a nulled one.
//
// Highlights:
// - Just/Nothing/Nil: construct a Maybe[T] directly
// - Of/FromOK/Optional/Nullable/FromPtr: route a raw value to the right variant
// - Onto/Bind: monadic bind; To/Map: transform and rewrap
// - Pick/Index: look into maps and slices
// - That/Which/When: filter; a failed filter always yields Nothing
// - Otherwise/Or/OrNil/OrNothing: unwrap with a lazy fallback
// - Run: side-effect tap; Lift/Apply: see the absence explicitly
//
// Methods keep the element type. Package functions with the same role change
// it (Bind, Map, Narrow, Apply), and the curried forms (Onto, To, Which,
// Lift, ...) return funcs usable as map callbacks over []Maybe[T].
package maybe
