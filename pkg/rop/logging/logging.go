// Package logging reports results through zerolog without altering them.
// Nothing in rop logs by itself; wrap a computation with Failures, or call
// Result at the point where a chain ends.
package logging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ib-77/roperr/pkg/rop"
	"github.com/ib-77/roperr/pkg/rop/fallible"
)

// Field names used on every event
const (
	ResultID  = "result_id"
	CreatedAt = "created_at"
	Failure   = "failure"
)

// Failures logs every failed evaluation of c at warn level and returns the
// result unchanged.
func Failures[E, A any](c rop.Fallible[E, A], logger zerolog.Logger, msg string) fallible.Computation[E, A] {
	return func(ctx context.Context) rop.Result[E, A] {
		res := c.Evaluate(ctx)
		if res.IsFailure() {
			failureEvent[E, A](logger.Warn(), res).Msg(msg)
		}
		return res
	}
}

// Result logs a finished result: successes at debug, failures at warn.
func Result[E, A any](logger zerolog.Logger, r rop.Outcome[E, A], msg string) {
	if r.IsSuccess() {
		logger.Debug().
			Str(ResultID, r.Id().String()).
			Time(CreatedAt, r.CreatedAt()).
			Msg(msg)
		return
	}
	failureEvent(logger.Warn(), r).Msg(msg)
}

func failureEvent[E, A any](e *zerolog.Event, r rop.Outcome[E, A]) *zerolog.Event {
	return e.
		Str(ResultID, r.Id().String()).
		Time(CreatedAt, r.CreatedAt()).
		Str(Failure, fmt.Sprintf("%v", r.Err()))
}
