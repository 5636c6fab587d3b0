package job

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilJobFunc is returned when a JobFunc is nil.
var ErrNilJobFunc = errors.New("nil JobFunc")

// jobFunc lets us pass plain closures to the shard executor.
type jobFunc func(context.Context) error

func (f jobFunc) Run(ctx context.Context) error {
	if f == nil {
		return fmt.Errorf("jobfunc: %w", ErrNilJobFunc)
	}
	return f(ctx)
}

// New creates a new job function from a closure.
func New(fn func(context.Context) error) jobFunc {
	return jobFunc(fn)
}

// Abandonable is a closure job that also hears about being dropped by the
// executor (context ended before it ran, or a panic cut it short).
type Abandonable struct {
	run       jobFunc
	onAbandon func(error)
}

// WithAbandon pairs fn with the callback invoked if fn never completes.
func WithAbandon(fn func(context.Context) error, onAbandon func(error)) *Abandonable {
	return &Abandonable{run: jobFunc(fn), onAbandon: onAbandon}
}

// Run implements shardqueue.Job.
func (a *Abandonable) Run(ctx context.Context) error { return a.run.Run(ctx) }

// Abandon implements shardqueue.Abandoner.
func (a *Abandonable) Abandon(err error) {
	if a.onAbandon != nil {
		a.onAbandon(err)
	}
}
