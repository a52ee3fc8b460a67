package solo

import (
	"context"
	"errors"

	"github.com/ib-77/roperr/pkg/rop"
)

func Succeed[E, A any](input A) rop.Result[E, A] {
	return rop.Success[E](input)
}

func Fail[A, E any](err E) rop.Result[E, A] {
	return rop.Failure[A](err)
}

func Validate[E, A any](ctx context.Context, input A,
	validate func(ctx context.Context, in A) (isValid bool, invalid E)) rop.Result[E, A] {
	return AndValidate(ctx, Succeed[E](input), validate)
}

func AndValidate[E, A any](ctx context.Context, input rop.Result[E, A],
	validate func(ctx context.Context, in A) (valid bool, invalid E)) rop.Result[E, A] {

	if input.IsSuccess() {
		if isValid, invalid := validate(ctx, input.Value()); !isValid {
			return rop.Failure[A](invalid)
		}
	}
	return input
}

// ValidateAll runs every validator against input. With breakOnError the first
// failure is returned as is; otherwise all failures are joined in order.
func ValidateAll[A any](
	ctx context.Context,
	input rop.Result[error, A],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[error, A]) rop.Result[error, A]) rop.Result[error, A] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[error, A]) rop.Result[error, A] {

			if current.IsFailure() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Failure[A](err)
		},
		inputsF...,
	)
}

// Switch feeds a successful value into onSuccess. A failure skips onSuccess and
// keeps its error.
func Switch[E, In, Out any](ctx context.Context,
	input rop.Result[E, In],
	onSuccess func(ctx context.Context, r In) rop.Result[E, Out]) rop.Result[E, Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.FailureFrom[Out](input)
}

func Map[E, In, Out any](ctx context.Context,
	input rop.Result[E, In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[E, Out] {

	if input.IsSuccess() {
		return rop.Success[E](onSuccess(ctx, input.Value()))
	}
	return rop.FailureFrom[Out](input)
}

// MapError rewrites the error of a failure. Successes pass through with their
// value, and onError is not called.
func MapError[A, E, E2 any](ctx context.Context,
	input rop.Result[E, A],
	onError func(ctx context.Context, err E) E2) rop.Result[E2, A] {

	if input.IsSuccess() {
		return rop.Success[E2](input.Value())
	}
	return rop.Failure[A](onError(ctx, input.Err()))
}

// Catch replaces a failure with the result of onError.
func Catch[E, A any](ctx context.Context,
	input rop.Result[E, A],
	onError func(ctx context.Context, err E) rop.Result[E, A]) rop.Result[E, A] {

	if input.IsSuccess() {
		return input
	}
	return onError(ctx, input.Err())
}

// Recover turns any result into a success, using onError to produce a value
// for failures.
func Recover[E, A any](ctx context.Context,
	input rop.Result[E, A],
	onError func(ctx context.Context, err E) A) rop.Result[rop.Never, A] {

	if input.IsSuccess() {
		return rop.Success[rop.Never](input.Value())
	}
	return rop.Success[rop.Never](onError(ctx, input.Err()))
}

func Tee[E, A any](ctx context.Context,
	input rop.Result[E, A],
	onSuccess func(ctx context.Context, r rop.Result[E, A])) rop.Result[E, A] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[E, A any](ctx context.Context, input rop.Result[E, A],
	onSuccess func(ctx context.Context, r A),
	onError func(ctx context.Context, err E)) rop.Result[E, A] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

func Try[In, Out any](ctx context.Context, input rop.Result[error, In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[error, Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return rop.Failure[Out](err)
		}

		return rop.Success[error](out)
	}

	return rop.FailureFrom[Out](input)
}

func FailOnError[E, A any](ctx context.Context, input rop.Result[E, A],
	maybeErr func(ctx context.Context, in A) (E, bool)) rop.Result[E, A] {
	if input.IsSuccess() {
		if err, failed := maybeErr(ctx, input.Value()); failed {
			return rop.Failure[A](err)
		}
	}
	return input
}

func Finally[E, In, Out any](ctx context.Context, input rop.Result[E, In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}

// Join folds input through inputsF, passing each stage's outcome through concat.
// With breakOnError the fold stops at the first failure.
func Join[E, A any](ctx context.Context,
	input rop.Result[E, A],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[E, A]) rop.Result[E, A],
	inputsF ...func(ctx context.Context, in rop.Result[E, A]) rop.Result[E, A]) rop.Result[E, A] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
