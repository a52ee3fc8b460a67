package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/roperr/pkg/rop"
)

type lengthErr struct {
	kind   string
	length int
}

func TestSwitch_ShortCircuitsFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := Fail[int](lengthErr{kind: "empty"})

	called := 0
	out := Switch(ctx, in, func(ctx context.Context, v int) rop.Result[lengthErr, string] {
		called++
		return Succeed[lengthErr]("x")
	})

	if out.IsSuccess() || out.Err().kind != "empty" {
		t.Fatalf("expected failure 'empty', got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if called != 0 {
		t.Fatalf("onSuccess must not be called for a failure, called %d times", called)
	}
	if out.Id() != in.Id() {
		t.Fatalf("expected failure to keep its id")
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, Succeed[string](4), func(ctx context.Context, v int) int { return v * 10 })
	if !out.IsSuccess() || out.Value() != 40 {
		t.Fatalf("expected success 40, got success=%v val=%v", out.IsSuccess(), out.Value())
	}

	failed := Map(ctx, Fail[int]("bad"), func(ctx context.Context, v int) int { return v * 10 })
	if failed.IsSuccess() || failed.Err() != "bad" {
		t.Fatalf("expected failure 'bad', got success=%v err=%v", failed.IsSuccess(), failed.Err())
	}
}

func TestMapError_TransformsOnlyFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	toLen := func(ctx context.Context, e string) int {
		calls++
		return len(e)
	}

	ok := MapError(ctx, Succeed[string](7), toLen)
	if !ok.IsSuccess() || ok.Value() != 7 || calls != 0 {
		t.Fatalf("expected untouched success 7 without calls, got success=%v val=%v calls=%d", ok.IsSuccess(), ok.Value(), calls)
	}

	failed := MapError(ctx, Fail[int]("four"), toLen)
	if failed.IsSuccess() || failed.Err() != 4 || calls != 1 {
		t.Fatalf("expected failure 4 after one call, got success=%v err=%v calls=%d", failed.IsSuccess(), failed.Err(), calls)
	}
}

func TestCatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	handler := func(ctx context.Context, e string) rop.Result[string, int] {
		calls++
		return Succeed[string](len(e))
	}

	ok := Catch(ctx, Succeed[string](1), handler)
	if !ok.IsSuccess() || ok.Value() != 1 || calls != 0 {
		t.Fatalf("expected success 1 without handler call, got val=%v calls=%d", ok.Value(), calls)
	}

	recovered := Catch(ctx, Fail[int]("abc"), handler)
	if !recovered.IsSuccess() || recovered.Value() != 3 || calls != 1 {
		t.Fatalf("expected recovered 3 after one call, got val=%v calls=%d", recovered.Value(), calls)
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Recover(ctx, Fail[int]("abc"), func(ctx context.Context, e string) int { return -len(e) })
	if !out.IsSuccess() || out.Value() != -3 {
		t.Fatalf("expected success -3, got success=%v val=%v", out.IsSuccess(), out.Value())
	}

	out = Recover(ctx, Succeed[string](9), func(ctx context.Context, e string) int {
		t.Fatalf("handler must not run for a success")
		return 0
	})
	if out.Value() != 9 {
		t.Fatalf("expected 9, got %v", out.Value())
	}
}

func TestTry_ConvertsError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, Succeed[error]("12"), func(ctx context.Context, s string) (int, error) {
		return 0, errors.New("not a number")
	})
	if out.IsSuccess() || out.Err().Error() != "not a number" {
		t.Fatalf("expected failure 'not a number', got success=%v err=%v", out.IsSuccess(), out.Err())
	}

	out = Try(ctx, Succeed[error]("12"), func(ctx context.Context, s string) (int, error) {
		return len(s), nil
	})
	if !out.IsSuccess() || out.Value() != 2 {
		t.Fatalf("expected success 2, got success=%v val=%v", out.IsSuccess(), out.Value())
	}
}

func TestAndValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notEmpty := func(ctx context.Context, s string) (bool, lengthErr) {
		return s != "", lengthErr{kind: "empty"}
	}

	if out := Validate(ctx, "abc", notEmpty); !out.IsSuccess() || out.Value() != "abc" {
		t.Fatalf("expected success 'abc', got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if out := Validate(ctx, "", notEmpty); out.IsSuccess() || out.Err().kind != "empty" {
		t.Fatalf("expected failure 'empty', got success=%v", out.IsSuccess())
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tooLong := func(ctx context.Context, s string) (lengthErr, bool) {
		return lengthErr{kind: "too long", length: len(s)}, len(s) > 5
	}

	out := FailOnError(ctx, Succeed[lengthErr]("1234567"), tooLong)
	if out.IsSuccess() || out.Err().length != 7 {
		t.Fatalf("expected 'too long' with length 7, got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	out = FailOnError(ctx, Succeed[lengthErr]("123"), tooLong)
	if !out.IsSuccess() {
		t.Fatalf("expected success, got %v", out.Err())
	}
}

func TestDoubleTee_CallsMatchingSide(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var onOk, onErr int
	DoubleTee(ctx, Succeed[string](1),
		func(ctx context.Context, v int) { onOk++ },
		func(ctx context.Context, e string) { onErr++ })
	DoubleTee(ctx, Fail[int]("x"),
		func(ctx context.Context, v int) { onOk++ },
		func(ctx context.Context, e string) { onErr++ })

	if onOk != 1 || onErr != 1 {
		t.Fatalf("expected one call per side, got ok=%d err=%d", onOk, onErr)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	report := func(r rop.Result[string, int]) string {
		return Finally(ctx, r,
			func(ctx context.Context, v int) string { return "ok" },
			func(ctx context.Context, e string) string { return "fail:" + e })
	}

	if got := report(Succeed[string](1)); got != "ok" {
		t.Fatalf("expected 'ok', got %q", got)
	}
	if got := report(Fail[int]("e")); got != "fail:e" {
		t.Fatalf("expected 'fail:e', got %q", got)
	}
}

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in rop.Result[error, int]) rop.Result[error, int] {
	return func(ctx context.Context, in rop.Result[error, int]) rop.Result[error, int] {
		if v < 0 {
			return rop.Failure[int](errors.New("negative"))
		}
		return rop.Success[error](v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[error, int]) rop.Result[error, int] {
	return func(ctx context.Context, in rop.Result[error, int]) rop.Result[error, int] {
		if v%2 != 0 {
			return rop.Failure[int](errors.New("odd"))
		}
		return rop.Success[error](v)
	}
}

func passThrough[T any]() func(ctx context.Context, in rop.Result[error, T]) rop.Result[error, T] {
	return func(ctx context.Context, in rop.Result[error, T]) rop.Result[error, T] { return in }
}

func TestValidateAll_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := 10 // non-negative, even
	input := rop.Success[error](v)

	res := ValidateAll(ctx, input, true, validateNonNegative(v), validateEven(v))

	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Value() != v {
		t.Fatalf("expected result %d, got %d", v, res.Value())
	}
}

func TestValidateAll_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -1 // fails non-negative and odd
	input := rop.Success[error](v)

	executed := 0
	v1 := func(ctx context.Context, in rop.Result[error, int]) rop.Result[error, int] {
		executed++
		return validateNonNegative(v)(ctx, in)
	}

	v2 := func(ctx context.Context, in rop.Result[error, int]) rop.Result[error, int] {
		executed++
		return validateEven(v)(ctx, in)
	}

	res := ValidateAll(ctx, input, true, v1, v2)

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}
	if executed != 1 {
		t.Fatalf("expected only first validator to execute, got %d", executed)
	}

	// errors.Join(single) keeps the original message
	if res.Err() == nil || res.Err().Error() != "negative" {
		t.Fatalf("expected 'negative' error, got: %v", res.Err())
	}
}

func TestValidateAll_AccumulateErrors_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -3 // negative and odd
	input := rop.Success[error](v)

	res := ValidateAll(ctx, input, false, validateNonNegative(v), validateNonNegative(v), validateEven(v))

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}

	errs := rop.GetErrors(res.Err())
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(errs))
	}

	// order follows validator sequence
	if errs[0].Error() != "negative" || errs[1].Error() != "negative" || errs[2].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'negative', 'odd'], got ['%s','%s','%s']",
			errs[0].Error(), errs[1].Error(), errs[2].Error())
	}
}

func TestValidateAll_InitialInputFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := rop.Failure[int](errors.New("initial"))

	res := ValidateAll(ctx, input, true, passThrough[int]())

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if res.Err() == nil || res.Err().Error() != "initial" {
		t.Fatalf("expected initial error to pass through, got: %v", res.Err())
	}
}

func TestValidateAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before running

	input := rop.Success[error](42)
	res := ValidateAll(ctx, input, false, validateNonNegative(42), validateEven(42))

	// a canceled context leaves the input untouched
	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Value() != 42 {
		t.Fatalf("expected original value 42, got %d", res.Value())
	}
}

func TestValidateAll_NoValidators(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := rop.Success[error](7)

	res := ValidateAll(ctx, input, false /* no validators */)

	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Value() != 7 {
		t.Fatalf("expected result 7, got %d", res.Value())
	}
}

func TestTee_OnlyOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := 0
	in := Fail[int]("bad")
	out := Tee(ctx, in, func(ctx context.Context, r rop.Result[string, int]) { called++ })
	if out.IsSuccess() || out.Err() != "bad" || out.Id() != in.Id() {
		t.Fatalf("expected the same failure back, got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if called != 0 {
		t.Fatalf("Tee must not call onSuccess for a failure, called %d times", called)
	}

	out = Tee(ctx, Succeed[string](2), func(ctx context.Context, r rop.Result[string, int]) { called++ })
	if !out.IsSuccess() || out.Value() != 2 || called != 1 {
		t.Fatalf("expected success 2 with one call, got val=%v called=%d", out.Value(), called)
	}
}

func TestJoin_BreakOnErrorStopsStages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	keep := func(ctx context.Context, r rop.Result[string, int]) rop.Result[string, int] { return r }
	reached := 0
	inc := func(ctx context.Context, in rop.Result[string, int]) rop.Result[string, int] {
		reached++
		return Succeed[string](in.Value() + 1)
	}
	fail := func(ctx context.Context, in rop.Result[string, int]) rop.Result[string, int] {
		return Fail[int]("stop")
	}

	out := Join(ctx, Succeed[string](0), true, keep, inc, fail, inc)
	if out.IsSuccess() || out.Err() != "stop" {
		t.Fatalf("expected failure 'stop', got success=%v val=%v", out.IsSuccess(), out.Value())
	}
	if reached != 1 {
		t.Fatalf("expected stages after the failure to be skipped, reached %d", reached)
	}

	out = Join(ctx, Succeed[string](0), true, keep, inc, inc)
	if !out.IsSuccess() || out.Value() != 2 {
		t.Fatalf("expected success 2, got success=%v val=%v", out.IsSuccess(), out.Value())
	}
}
