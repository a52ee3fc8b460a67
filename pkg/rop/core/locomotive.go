package core

import (
	"context"
	"sync"

	"github.com/ib-77/roperr/pkg/rop"
)

type CancellationHandlers[E, In, Out any] struct {
	// OnCancel receives the input channel once ctx ends, to drain or account for it.
	OnCancel func(ctx context.Context, inputCh <-chan rop.Result[E, In], outCh chan<- rop.Result[E, Out])
	// OnCancelProcessed receives a result that was computed but could not be sent.
	OnCancelProcessed func(ctx context.Context, in rop.Result[E, In], processed rop.Result[E, Out], outCh chan<- rop.Result[E, Out])
}

// Locomotive pulls results from inputCh, runs engine on each and pushes the
// outcome to outCh until inputCh closes or ctx ends.
func Locomotive[E, In, Out any](ctx context.Context, inputCh <-chan rop.Result[E, In], outCh chan<- rop.Result[E, Out],
	engine func(ctx context.Context, input rop.Result[E, In]) rop.Result[E, Out],
	handlers CancellationHandlers[E, In, Out],
	onSuccess func(ctx context.Context, out rop.Result[E, Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- pr:
				if onSuccess != nil {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}
