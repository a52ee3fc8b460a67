package async

import (
	"context"
	"sync"

	"github.com/ib-77/roperr/pkg/rop"
	"github.com/ib-77/roperr/pkg/rop/core"
	"github.com/ib-77/roperr/pkg/rop/solo"
)

// Run pushes every result through stage on lines workers. The worker count
// stored with core.WithWorkerOptions wins over lines.
func Run[E, A any](ctx context.Context, inputCh <-chan rop.Result[E, A],
	stage func(ctx context.Context, v A) rop.Fallible[E, A],
	lines int) <-chan rop.Result[E, A] {
	return Turnout(ctx, inputCh, stage, lines)
}

// Turnout is Run for stages that change the value type.
func Turnout[E, In, Out any](ctx context.Context, inputCh <-chan rop.Result[E, In],
	stage func(ctx context.Context, v In) rop.Fallible[E, Out],
	lines int) <-chan rop.Result[E, Out] {
	return Custom(ctx, inputCh, stage, core.CancellationHandlers[E, In, Out]{}, nil, lines)
}

// Custom is Turnout with cancellation handlers and a callback for every
// result delivered downstream.
func Custom[E, In, Out any](ctx context.Context, inputCh <-chan rop.Result[E, In],
	stage func(ctx context.Context, v In) rop.Fallible[E, Out],
	handlers core.CancellationHandlers[E, In, Out],
	onSuccess func(ctx context.Context, out rop.Result[E, Out]), lines int) <-chan rop.Result[E, Out] {

	out := make(chan rop.Result[E, Out])
	wg := &sync.WaitGroup{}

	engine := func(ctx context.Context, input rop.Result[E, In]) rop.Result[E, Out] {
		return solo.Switch(ctx, input, func(ctx context.Context, v In) rop.Result[E, Out] {
			return stage(ctx, v).Evaluate(ctx)
		})
	}

	for range core.GetWorkerMaxCount(ctx, lines) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

type FinallyHandlers[E, In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err E) Out
}

// Finally reduces every result to a plain value using handlers.
func Finally[E, In, Out any](ctx context.Context, inputCh <-chan rop.Result[E, In],
	handlers FinallyHandlers[E, In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError)

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
