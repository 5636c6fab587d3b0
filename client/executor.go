package client

import (
	"context"

	"github.com/animalspotter/animalspotter/client/internal/shardqueue"
)

// executor abstracts the internal async job runner used by async APIs.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Barrier(context.Context, string) error
	Stop()
}

// Executor runs the async calls of one or more clients. Calls from one
// client run in the order they were made; different clients may run in
// parallel.
type Executor interface {
	executor
	Close() error
}

// ExecutorConfig tunes a shared executor. See LoadExecutorConfig.
type ExecutorConfig = shardqueue.Config

// LoadExecutorConfig reads ExecutorConfig from SQ_* environment variables.
func LoadExecutorConfig() (ExecutorConfig, error) { return shardqueue.LoadConfig() }

// NewSharedExecutor starts an executor that several clients can share via
// WithExecutor. The caller owns it and must Close it after the clients.
func NewSharedExecutor(cfg ExecutorConfig) Executor {
	return shardqueue.NewShardExecutor(cfg)
}
