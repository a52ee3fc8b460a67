package chain

import (
	"context"

	"github.com/ib-77/roperr/pkg/rop"
	"github.com/ib-77/roperr/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[E, A any] struct {
	ctx    context.Context
	result rop.Result[E, A]
}

// Start creates a new chain from a rop.Result
func Start[E, A any](ctx context.Context, result rop.Result[E, A]) *Chain[E, A] {
	return &Chain[E, A]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[E, A any](ctx context.Context, value A) *Chain[E, A] {
	return &Chain[E, A]{
		ctx:    ctx,
		result: rop.Success[E](value),
	}
}

// From evaluates f and starts a chain with its result
func From[E, A any](ctx context.Context, f rop.Fallible[E, A]) *Chain[E, A] {
	return Start(ctx, f.Evaluate(ctx))
}

// Result returns the underlying rop.Result
func (c *Chain[E, A]) Result() rop.Result[E, A] {
	return c.result
}

// Evaluate returns the chain result; the chain is already evaluated
func (c *Chain[E, A]) Evaluate(_ context.Context) rop.Result[E, A] {
	return c.result
}

// Then chains a function that returns rop.Result[E, U]
func Then[E, A, U any](c *Chain[E, A], onSuccess func(context.Context, A) rop.Result[E, U]) *Chain[E, U] {
	return &Chain[E, U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[A, U any](c *Chain[error, A], tryOnSuccess func(context.Context, A) (U, error)) *Chain[error, U] {
	return &Chain[error, U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[E, A, U any](c *Chain[E, A], onSuccess func(context.Context, A) U) *Chain[E, U] {
	return &Chain[E, U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// MapError rewrites the error of a failed chain
func MapError[E, E2, A any](c *Chain[E, A], onError func(context.Context, E) E2) *Chain[E2, A] {
	return &Chain[E2, A]{
		ctx:    c.ctx,
		result: solo.MapError(c.ctx, c.result, onError),
	}
}

// Catch replaces a failure with the result of onError
func (c *Chain[E, A]) Catch(onError func(context.Context, E) rop.Result[E, A]) *Chain[E, A] {
	return &Chain[E, A]{
		ctx:    c.ctx,
		result: solo.Catch(c.ctx, c.result, onError),
	}
}

// Recover turns a failure into a success value
func (c *Chain[E, A]) Recover(onError func(context.Context, E) A) *Chain[rop.Never, A] {
	return &Chain[rop.Never, A]{
		ctx:    c.ctx,
		result: solo.Recover(c.ctx, c.result, onError),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[E, A]) Ensure(onSuccess func(context.Context, A)) *Chain[E, A] {
	return &Chain[E, A]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[E, A]) {
				onSuccess(ctx, result.Value())
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[E, A, U any](c *Chain[E, A], onSuccess func(context.Context, A) U, onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
