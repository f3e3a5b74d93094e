package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStrategies(t *testing.T) {
	tests := []struct {
		name    string
		backoff *Backoff
		want    []time.Duration
	}{
		{
			name:    "constant",
			backoff: NewConstant(2 * time.Second),
			want:    []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second},
		},
		{
			name:    "exponential with limit",
			backoff: NewExponential(time.Second, 3*time.Second),
			want:    []time.Duration{time.Second, 2 * time.Second, 3 * time.Second},
		},
		{
			name:    "linear",
			backoff: NewLinear(time.Second, 0),
			want:    []time.Duration{time.Second, 2 * time.Second, 3 * time.Second},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			b := tt.backoff
			for i, want := range tt.want {
				req.Equal(want, b.getNextDuration(), "step %d", i)
				b.LastDuration = b.NextDuration
				b.count++
			}
		})
	}
}

func TestBackoffCancelled(t *testing.T) {
	req := require.New(t)
	b := NewConstant(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(b.Backoff(ctx), context.Canceled)
	req.Equal(0, b.Count())
}

var errNotYet = errors.New("not yet")

func TestRetry(t *testing.T) {
	errFatal := errors.New("fatal")
	tests := []struct {
		name         string
		succeedAt    int
		failWith     error
		wantErr      error
		wantAttempts int
		wantSleeps   int
	}{
		{
			name:         "first attempt",
			succeedAt:    1,
			wantAttempts: 1,
			wantSleeps:   0,
		},
		{
			name:         "fourth attempt sleeps three times",
			succeedAt:    4,
			failWith:     errNotYet,
			wantAttempts: 4,
			wantSleeps:   3,
		},
		{
			name:         "never succeeds",
			succeedAt:    0,
			failWith:     errNotYet,
			wantErr:      ErrAttemptsExhausted,
			wantAttempts: 10,
			wantSleeps:   9,
		},
		{
			name:         "non retryable aborts",
			succeedAt:    0,
			failWith:     errFatal,
			wantErr:      errFatal,
			wantAttempts: 1,
			wantSleeps:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			attempts, sleeps := 0, 0
			b := NewConstant(time.Millisecond)
			err := Retry(context.Background(), Policy{
				MaxAttempts: 10,
				Backoff:     b,
				Retryable:   func(err error) bool { return errors.Is(err, errNotYet) },
				OnRetry:     func(int, error) { sleeps++ },
			}, func(attempt int) error {
				attempts++
				req.Equal(attempts, attempt)
				if attempt == tt.succeedAt {
					return nil
				}
				return tt.failWith
			})
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
			} else {
				req.NoError(err)
			}
			req.Equal(tt.wantAttempts, attempts)
			req.Equal(tt.wantSleeps, sleeps)
			req.Equal(tt.wantSleeps, b.Count())
		})
	}
}

func TestRetryExhaustedKeepsLastError(t *testing.T) {
	req := require.New(t)
	err := Retry(context.Background(), Policy{MaxAttempts: 2, Backoff: NewConstant(0)}, func(int) error {
		return errNotYet
	})
	req.ErrorIs(err, ErrAttemptsExhausted)
	req.ErrorIs(err, errNotYet)
	var exhausted *ExhaustedError
	req.True(errors.As(err, &exhausted))
	req.Equal(2, exhausted.Attempts)
}

func TestRetryContextCancelled(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	err := Retry(ctx, Policy{
		MaxAttempts: 10,
		Backoff:     NewConstant(time.Hour),
		OnRetry:     func(int, error) { cancel() },
	}, func(int) error {
		return errNotYet
	})
	req.ErrorIs(err, context.Canceled)
}
