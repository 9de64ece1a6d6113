// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retry re-issues service calls that failed with a transient error.
// The service never retries on its own; this is the caller's policy.
package retry

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/pdiddy/growthpro/internal/async"
	"github.com/pdiddy/growthpro/internal/mockapi"
)

// BaseDelay controls the base duration for exponential backoff between
// attempts. Tests override this to avoid real sleeps.
var BaseDelay = 500 * time.Millisecond

const defaultMaxRetries = 3

// Do starts call and waits for its result, re-issuing it when it fails with
// a mockapi.TransientServiceError. The backoff starts at BaseDelay and
// doubles each attempt: 0.5 s, 1 s, 2 s.
//
// When maxRetries is 0 or negative the default (3) is used. Non-transient
// errors are returned at once. If ctx is cancelled during a backoff wait Do
// returns ctx.Err(). After exhausting retries the last transient error is
// returned. A line is written to w before each retry.
func Do[T any](ctx context.Context, maxRetries int, w io.Writer, call func(context.Context) *async.Future[T]) (T, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		v, err := call(ctx).AwaitContext(ctx)
		if err == nil || !mockapi.IsTransient(err) {
			return v, err
		}

		if attempt >= maxRetries {
			return v, err
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * BaseDelay
		fmt.Fprintf(w, "%v, retrying in %v (attempt %d/%d)\n", err, backoff, attempt+1, maxRetries)

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
