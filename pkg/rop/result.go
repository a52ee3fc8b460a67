package rop

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a success value A or an error value E.
type Result[E, A any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     A
	err       E
	isSuccess bool
}

// Never is the error type of computations that cannot fail.
type Never struct{}

// Success builds a successful result. The error type is named explicitly:
// rop.Success[MyErr](42).
func Success[E, A any](v A) Result[E, A] {
	return Result[E, A]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds a failed result. The value type is named explicitly:
// rop.Failure[int](EmptyString).
func Failure[A, E any](err E) Result[E, A] {
	return Result[E, A]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries the error of a failed result over to another value type,
// keeping its id and creation time.
func FailureFrom[Out, E, In any](from Result[E, In]) Result[E, Out] {
	return Result[E, Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[E, A]) Value() A {
	return r.value
}

func (r Result[E, A]) Err() E {
	return r.err
}

// Get returns the value, the error and whether the result is a success.
func (r Result[E, A]) Get() (A, E, bool) {
	return r.value, r.err, r.isSuccess
}

func (r Result[E, A]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[E, A]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[E, A]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[E, A]) Id() uuid.UUID {
	return r.id
}

// Evaluate returns r itself, so a plain Result is a Fallible.
func (r Result[E, A]) Evaluate(_ context.Context) Result[E, A] {
	return r
}
