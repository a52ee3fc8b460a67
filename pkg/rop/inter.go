package rop

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Fallible is anything that can be evaluated to a Result: a plain Result,
// a lazy computation, a deferred value running on another goroutine.
type Fallible[E, A any] interface {
	Evaluate(ctx context.Context) Result[E, A]
}

type ResultProvider[A any] interface {
	// Value returns the successful value
	Value() A
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome is a read-only view of a finished Result
type Outcome[E, A any] interface {
	ResultProvider[A]
	// Err returns the error value if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Id identifies the result
	Id() uuid.UUID
}
