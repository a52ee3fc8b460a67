// Package chain provides a fluent wrapper around Result[E, A]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Catch, Tee, and Finally behind a
// convenient Chain[E, A] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/From: begin a chain from a Result, a value or a Fallible
// - Then: switch to a new Result[E, U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map/MapError: transform the successful value or the error
// - Catch/Recover: replace a failure with a result or a plain value
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
