package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// WithWorkerOptions stores the number of workers pipelines should start.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the worker count stored in ctx, or defaultMaxWorkers.
// Counts below one are raised to one.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	count := defaultMaxWorkers
	if options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions); ok {
		count = options.MaxCount.Value
	}
	return max(count, 1)
}
