// Package rop defines Result[E, A], a value holding either a success of type A
// or a failure of type E, and the Fallible interface implemented by everything
// that can be evaluated to a Result.
//
// Failures are ordinary values. Nothing in rop or its subpackages panics to
// signal a failure, and nothing recovers a panic into one.
package rop
