package async

import (
	"context"

	"github.com/ib-77/roperr/pkg/rop"
)

// Future is a computation started on its own goroutine. Its result is
// computed once; every Evaluate returns the same Result.
type Future[E, A any] struct {
	done     chan struct{}
	result   rop.Result[E, A]
	onCancel func(ctx context.Context, err error) E
}

// Go starts evaluating c with ctx. onCancel builds the error returned by an
// Evaluate whose own context ends before the result is ready. With a nil
// onCancel, or when E is rop.Never, Evaluate ignores its context and waits
// for the result.
func Go[E, A any](ctx context.Context, c rop.Fallible[E, A],
	onCancel func(ctx context.Context, err error) E) *Future[E, A] {

	if _, never := any(*new(E)).(rop.Never); never {
		onCancel = nil
	}

	f := &Future[E, A]{
		done:     make(chan struct{}),
		onCancel: onCancel,
	}

	go func() {
		defer close(f.done)
		f.result = c.Evaluate(ctx)
	}()

	return f
}

// Evaluate waits for the result or for ctx to end.
func (f *Future[E, A]) Evaluate(ctx context.Context) rop.Result[E, A] {
	select {
	case <-f.done:
		return f.result
	default:
	}

	if f.onCancel == nil {
		<-f.done
		return f.result
	}

	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		return rop.Failure[A](f.onCancel(ctx, ctx.Err()))
	}
}

// Done is closed once the result is available.
func (f *Future[E, A]) Done() <-chan struct{} {
	return f.done
}

// All starts every computation and waits for them in order. The first
// failure, in input order, is returned.
func All[E, A any](ctx context.Context, onCancel func(ctx context.Context, err error) E,
	computations ...rop.Fallible[E, A]) rop.Result[E, []A] {

	futures := make([]*Future[E, A], 0, len(computations))
	for _, c := range computations {
		futures = append(futures, Go(ctx, c, onCancel))
	}

	values := make([]A, 0, len(futures))
	for _, f := range futures {
		res := f.Evaluate(ctx)
		if res.IsFailure() {
			return rop.FailureFrom[[]A](res)
		}
		values = append(values, res.Value())
	}
	return rop.Success[E](values)
}
