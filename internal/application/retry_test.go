package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Retry_SucceedsWithinAttempts(t *testing.T) {
	t.Parallel()
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errOutage
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func Test_Retry_StopsAfterAttempts(t *testing.T) {
	t.Parallel()
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return errOutage
	})
	require.ErrorIs(t, err, errOutage)
	require.Equal(t, 3, calls)
}

func Test_Retry_FirstSuccessNeedsNoRetry(t *testing.T) {
	t.Parallel()
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func Test_Retry_ContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Retry(ctx, 3, time.Minute, func() error {
		calls++
		return errOutage
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}
