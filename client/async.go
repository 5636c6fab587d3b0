package client

import (
	"context"
	"errors"
	"sync"

	"github.com/animalspotter/animalspotter/client/internal/api"
	sdkerrors "github.com/animalspotter/animalspotter/client/internal/errors"
	"github.com/animalspotter/animalspotter/client/internal/job"
)

// Result is the single outcome of an async call.
type Result[T any] struct {
	Value T
	Err   error
}

// RegisterAsync runs Register on the client's executor. The returned channel
// receives exactly one value and is then closed.
func (c *Client) RegisterAsync(ctx context.Context, creds Credentials) <-chan error {
	out := make(chan error, 1)
	dispatch(c, ctx, api.OpRegister,
		func(jctx context.Context) (struct{}, error) { return struct{}{}, c.Register(jctx, creds) },
		func(_ struct{}, err error) { out <- err; close(out) })
	return out
}

// AuthenticateAsync runs Authenticate on the client's executor. Async calls
// of one client run in order, so a ListAnimalsAsync issued afterwards sees
// the new token.
func (c *Client) AuthenticateAsync(ctx context.Context, creds Credentials) <-chan error {
	out := make(chan error, 1)
	dispatch(c, ctx, api.OpAuthenticate,
		func(jctx context.Context) (struct{}, error) { return struct{}{}, c.Authenticate(jctx, creds) },
		func(_ struct{}, err error) { out <- err; close(out) })
	return out
}

// ListAnimalsAsync runs ListAnimals on the client's executor. The token is
// read when the call runs, not when it is submitted.
func (c *Client) ListAnimalsAsync(ctx context.Context) <-chan Result[[]AnimalName] {
	out := make(chan Result[[]AnimalName], 1)
	dispatch(c, ctx, api.OpListAnimals,
		c.ListAnimals,
		func(v []AnimalName, err error) { out <- Result[[]AnimalName]{Value: v, Err: err}; close(out) })
	return out
}

// AwaitIdle blocks until every async call this client submitted before the
// call has completed.
func (c *Client) AwaitIdle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.exec.Barrier(ctx, c.sessionID)
}

// dispatch submits fn under the client's session key and guarantees that
// complete is called exactly once: with fn's result, with the reason the
// executor dropped the job, or with the submission error.
func dispatch[T any](c *Client, ctx context.Context, op string, fn func(context.Context) (T, error), complete func(T, error)) {
	var once sync.Once
	finish := func(v T, err error) {
		once.Do(func() {
			if err != nil {
				asyncFailedTotal.WithLabelValues(op).Inc()
			}
			complete(v, err)
		})
	}
	var zero T

	j := job.WithAbandon(
		func(jctx context.Context) error {
			v, err := fn(jctx)
			finish(v, err)
			return err
		},
		func(err error) { finish(zero, asContextError(op, err)) },
	)

	if err := c.exec.Submit(ctx, c.sessionID, j); err != nil {
		c.logger.Debug().Err(err).Str("op", op).Msg("async submit rejected")
		finish(zero, asContextError(op, err))
		return
	}
	asyncEnqueuedTotal.WithLabelValues(op).Inc()
}

// asContextError reports a context that ended before the request went out
// the same way the synchronous path does: as a Transport error.
func asContextError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return sdkerrors.NewNetworkError(op, err)
	}
	return err
}
