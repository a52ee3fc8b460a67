package fallible

import (
	"context"

	"github.com/ib-77/roperr/pkg/rop"
	"github.com/ib-77/roperr/pkg/rop/solo"
)

// Computation is evaluated each time it is called. It owns whatever it
// captured; evaluation shares nothing with other computations.
type Computation[E, A any] func(ctx context.Context) rop.Result[E, A]

func (c Computation[E, A]) Evaluate(ctx context.Context) rop.Result[E, A] {
	return c(ctx)
}

// Of adapts any rop.Fallible to a Computation.
func Of[E, A any](f rop.Fallible[E, A]) Computation[E, A] {
	if c, ok := f.(Computation[E, A]); ok {
		return c
	}
	return f.Evaluate
}

func Evaluate[E, A any](ctx context.Context, f rop.Fallible[E, A]) rop.Result[E, A] {
	return f.Evaluate(ctx)
}

func Pure[E, A any](v A) Computation[E, A] {
	return func(context.Context) rop.Result[E, A] {
		return rop.Success[E](v)
	}
}

// FromGo wraps a Go style (value, error) call.
func FromGo[A any](f func(ctx context.Context) (A, error)) Computation[error, A] {
	return func(ctx context.Context) rop.Result[error, A] {
		v, err := f(ctx)
		if err != nil {
			return rop.Failure[A](err)
		}
		return rop.Success[error](v)
	}
}

// Then runs next with the value of c. If c fails, next is not called and the
// failure is returned unchanged.
func Then[E, A, B any](c rop.Fallible[E, A], next func(ctx context.Context, v A) rop.Fallible[E, B]) Computation[E, B] {
	return func(ctx context.Context) rop.Result[E, B] {
		return solo.Switch(ctx, c.Evaluate(ctx), func(ctx context.Context, v A) rop.Result[E, B] {
			return next(ctx, v).Evaluate(ctx)
		})
	}
}

func Map[E, A, B any](c rop.Fallible[E, A], f func(ctx context.Context, v A) B) Computation[E, B] {
	return func(ctx context.Context) rop.Result[E, B] {
		return solo.Map(ctx, c.Evaluate(ctx), f)
	}
}

// Sequence threads a value through stages left to right. The first failing
// stage ends the sequence; later stages never run.
func Sequence[E, A any](c rop.Fallible[E, A], stages ...func(ctx context.Context, v A) rop.Fallible[E, A]) Computation[E, A] {
	return func(ctx context.Context) rop.Result[E, A] {
		res := c.Evaluate(ctx)
		for _, stage := range stages {
			if res.IsFailure() {
				return res
			}
			res = stage(ctx, res.Value()).Evaluate(ctx)
		}
		return res
	}
}

// Fold evaluates c and reduces the outcome to a single value.
func Fold[E, A, Out any](ctx context.Context, c rop.Fallible[E, A],
	onSuccess func(ctx context.Context, v A) Out,
	onError func(ctx context.Context, err E) Out) Out {
	return solo.Finally(ctx, c.Evaluate(ctx), onSuccess, onError)
}

// Value evaluates a computation that cannot fail.
func Value[A any](ctx context.Context, c rop.Fallible[rop.Never, A]) A {
	return c.Evaluate(ctx).Value()
}
