// Package result provides Result[T], the outcome of a fallible computation:
// either a Success holding a value or a Failure holding the error that
// caused it.
//
// Highlights:
// - Success/Failure: construct a Result[T]; Failure rejects a nil error
// - Of: route an error value to Failure and anything else to Success
// - From/Try/FromMaybe: bridge (T, error) pairs, panics and maybe.Maybe
// - Onto/Bind: monadic bind; To/Map/MapBoth/MapPair: transform and rewrap
// - That/Which: turn a rejected value into a Failure
// - Run/Through: side-effect taps; MapError: rewrite the error only
// - Reduce/Into/Collapse: collapse to a plain value
// - Collect: gather many results, joining every failure
package result
