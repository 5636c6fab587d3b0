package shardqueue

import "context"

// Job is a unit of work executed by a ShardExecutor.
// Run must be safe for concurrent invocations when the same Job instance is reused.
type Job interface {
	Run(ctx context.Context) error
}

// Abandoner is implemented by jobs that need to know when the executor gives
// up on them: skipped because the context ended, or cut short by a panic.
// Abandon is called at most once per submission, from the worker goroutine.
type Abandoner interface {
	Abandon(err error)
}

// JobFunc is a helper to adapt a function to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job for JobFunc.
func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }
