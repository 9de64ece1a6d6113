// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package async runs a single unit of work on its own goroutine and hands
// the caller a Future for its result. Each Future resolves exactly once.
package async

import (
	"context"

	"github.com/google/uuid"
)

// Future is the pending result of a call started with Go.
type Future[T any] struct {
	id     string
	done   chan struct{}
	result T
	err    error
}

// Go starts fn on a new goroutine and returns its Future. If ctx is already
// done, fn is not invoked and the Future resolves with ctx.Err().
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{
		id:   uuid.NewString(),
		done: make(chan struct{}),
	}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns a Future that is already complete.
func Resolved[T any](v T, err error) *Future[T] {
	f := &Future[T]{id: uuid.NewString(), done: make(chan struct{}), result: v, err: err}
	close(f.done)
	return f
}

// ID identifies the call. Callers issuing overlapping requests use it to
// discard stale responses.
func (f *Future[T]) ID() string {
	return f.id
}

// Done is closed once the Future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the Future has resolved, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the Future resolves.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext blocks until the Future resolves or ctx is done, whichever
// comes first. Giving up on the wait does not stop the underlying call.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
