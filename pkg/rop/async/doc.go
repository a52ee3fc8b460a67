// Package async runs fallible computations off the calling goroutine.
//
// Future is a deferred rop.Fallible: every operation from the fallible package
// accepts it unchanged. Run, Turnout and Finally lift solo primitives over
// channels of results and spread them across a fixed number of workers
// (lines). A failed input never reaches a stage; it is forwarded as is.
package async
