package backoff

import (
	"context"
	"errors"
	"fmt"
)

// ErrAttemptsExhausted is matched by errors.Is on the error Retry returns once every attempt failed
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// Policy bounds a Retry loop.
type Policy struct {
	MaxAttempts int
	// Backoff is consulted between attempts only, never after the last one.
	Backoff *Backoff
	// Retryable reports whether err deserves another attempt. nil retries every error.
	Retryable func(err error) bool
	// OnRetry runs right before each sleep.
	OnRetry func(attempt int, err error)
}

type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrAttemptsExhausted
}

// Retry calls fn until it succeeds, returns a non-retryable error, the context is done
// or MaxAttempts calls were made. attempt starts at 1.
func Retry(ctx context.Context, p Policy, fn func(attempt int) error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.Backoff == nil {
		p.Backoff = NewConstant(0)
	}
	p.Backoff.Reset()

	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}
		if sleepErr := p.Backoff.Backoff(ctx); sleepErr != nil {
			return sleepErr
		}
	}
	return &ExhaustedError{Attempts: p.MaxAttempts, Last: err}
}
