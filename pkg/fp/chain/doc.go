// Package chain provides a fluent, context-carrying wrapper around
// result.Result[T] for building synchronous pipelines.
//
// Every step short-circuits on a Failure and checks the context before it
// runs: a cancelled or expired context turns the chain into a Failure caused
// by ctx.Err(). Step failures are logged at debug level through the apex/log
// logger stored in the context (log.NewContext).
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry/Map: compose result-returning, (U, error) and pure steps
// - RepeatUntil/While: loop a step, bounded by WithMaxRepeats
// - Or/And: choose among alternative chains
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
