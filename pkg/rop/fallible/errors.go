package fallible

import (
	"context"

	"github.com/ib-77/roperr/pkg/rop"
	"github.com/ib-77/roperr/pkg/rop/solo"
)

// ThrowError fails with err for any value type A: fallible.ThrowError[int](EmptyString).
func ThrowError[A, E any](err E) Computation[E, A] {
	return func(context.Context) rop.Result[E, A] {
		return rop.Failure[A](err)
	}
}

// LiftEither embeds an already computed result. Evaluation returns r as is.
func LiftEither[E, A any](r rop.Result[E, A]) Computation[E, A] {
	return r.Evaluate
}

// CatchError evaluates c and, on failure, evaluates handler(err) in its place.
// handler runs at most once per evaluation and never for a success.
func CatchError[E, A any](c rop.Fallible[E, A], handler func(ctx context.Context, err E) rop.Fallible[E, A]) Computation[E, A] {
	return func(ctx context.Context) rop.Result[E, A] {
		return solo.Catch(ctx, c.Evaluate(ctx), func(ctx context.Context, err E) rop.Result[E, A] {
			return handler(ctx, err).Evaluate(ctx)
		})
	}
}

// TryError reifies the outcome of c as a value. The returned computation
// always succeeds.
func TryError[E, A any](c rop.Fallible[E, A]) Computation[rop.Never, rop.Result[E, A]] {
	return func(ctx context.Context) rop.Result[rop.Never, rop.Result[E, A]] {
		return rop.Success[rop.Never](c.Evaluate(ctx))
	}
}

// WithError rewrites the error of a failing c with f. f is not called on success.
func WithError[E, E2, A any](c rop.Fallible[E, A], f func(ctx context.Context, err E) E2) Computation[E2, A] {
	return func(ctx context.Context) rop.Result[E2, A] {
		return solo.MapError(ctx, c.Evaluate(ctx), f)
	}
}

// MapError behaves exactly like WithError.
func MapError[E, E2, A any](c rop.Fallible[E, A], f func(ctx context.Context, err E) E2) Computation[E2, A] {
	return WithError(c, f)
}

// HandleError recovers a failure with a plain value. The result never fails.
func HandleError[E, A any](c rop.Fallible[E, A], handler func(ctx context.Context, err E) A) Computation[rop.Never, A] {
	return func(ctx context.Context) rop.Result[rop.Never, A] {
		return solo.Recover(ctx, c.Evaluate(ctx), handler)
	}
}
