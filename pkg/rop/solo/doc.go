// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[E, A]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[E, A]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[E, In] to Result[E, Out]
// - Map/MapError: transform the success or the error side
// - Catch/Recover: replace a failure with another result or a plain value
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
