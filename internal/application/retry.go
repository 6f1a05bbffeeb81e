package application

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry runs op up to attempts times, doubling the delay between tries
// starting at base. The delay sequence carries no jitter so runs are
// reproducible. Context cancellation aborts the wait.
func Retry(ctx context.Context, attempts int, base time.Duration, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = base
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0
	b := backoff.WithMaxRetries(backoff.WithContext(exp, ctx), uint64(attempts-1))
	return backoff.Retry(op, b)
}
