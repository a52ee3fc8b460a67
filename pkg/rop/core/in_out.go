package core

import (
	"context"

	"github.com/ib-77/roperr/pkg/rop"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanFromArgsResults emits every value as a successful result. When ctx ends
// first, handlers receive the values that were never sent.
func ToChanFromArgsResults[E, A any](ctx context.Context, handlers ToChanHandlers[A], values ...A) <-chan rop.Result[E, A] {
	in := make(chan rop.Result[E, A])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rop.Success[E](v):
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// ToChanFallibles evaluates each computation in order and emits its result.
func ToChanFallibles[E, A any](ctx context.Context, computations ...rop.Fallible[E, A]) <-chan rop.Result[E, A] {
	in := make(chan rop.Result[E, A])

	go func() {
		defer close(in)

		for _, c := range computations {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- c.Evaluate(ctx):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

func ToChanManyResultsWithHandlers[E, A any](ctx context.Context, handlers ToChanHandlers[A], values []A) <-chan rop.Result[E, A] {
	return ToChanFromArgsResults[E](ctx, handlers, values...)
}

func ToChanManyResults[E, A any](ctx context.Context, values []A) <-chan rop.Result[E, A] {
	return ToChanFromArgsResults[E](ctx, ToChanHandlers[A]{}, values...)
}

// FromChanMany drains out until it closes or ctx ends.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
