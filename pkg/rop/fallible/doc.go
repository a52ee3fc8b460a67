// Package fallible provides Computation[E, A], a lazy computation that either
// produces a value of type A or fails with an error value of type E, and the
// error-handling operations defined over any rop.Fallible container:
//
// - ThrowError: a computation that fails immediately
// - CatchError: replace a failure with another computation
// - LiftEither: embed an existing rop.Result
// - TryError: turn a fallible computation into one that always succeeds with its Result
// - WithError/MapError: rewrite the error value
// - HandleError: replace a failure with a plain value
//
// Sequencing with Then, Map and Sequence short-circuits: the first failing
// stage stops the chain and its error reaches the end unchanged.
//
// Failures here are values. They are unrelated to panics: a panicking handler
// panics through every operation, and no operation ever panics to report a
// failure.
package fallible
