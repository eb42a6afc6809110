package httputil

import (
	"context"
	stderrors "errors"
	"testing"
	"time"
)

var errTransient = stderrors.New("transient")

func TestRetry(t *testing.T) {
	ctx := context.Background()

	calls := 0
	err := Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("success: err=%v calls=%d, want nil and 1", err, calls)
	}

	calls = 0
	permanent := stderrors.New("permanent")
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return permanent
	})
	if err != permanent || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d, want permanent and 1", err, calls)
	}

	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errTransient}
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("retryable: err=%v calls=%d, want nil and 3", err, calls)
	}

	calls = 0
	err = Retry(ctx, 2, time.Millisecond, func() error {
		calls++
		return &RetryableError{Err: errTransient}
	})
	if !stderrors.Is(err, errTransient) || calls != 2 {
		t.Errorf("exhausted: err=%v calls=%d, want transient and 2", err, calls)
	}
}

func TestRetryZeroAttempts(t *testing.T) {
	calls := 0
	_ = Retry(context.Background(), 0, time.Millisecond, func() error {
		calls++
		return nil
	})
	if calls != 1 {
		t.Errorf("calls = %d, want at least one attempt", calls)
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Second, func() error {
		return &RetryableError{Err: errTransient}
	})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(&RetryableError{Err: errTransient}) {
		t.Error("wrapped error should be retryable")
	}
	if IsRetryable(errTransient) {
		t.Error("plain error should not be retryable")
	}
	if (&RetryableError{Err: errTransient}).Error() != "transient" {
		t.Error("RetryableError should preserve the message")
	}
}

func TestRetryHonorsAfter(t *testing.T) {
	const after = 30 * time.Millisecond
	calls := 0
	start := time.Now()
	err := Retry(context.Background(), 2, time.Millisecond, func() error {
		calls++
		if calls == 1 {
			return &RetryableError{Err: errTransient, After: after}
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Fatalf("err=%v calls=%d, want nil and 2", err, calls)
	}
	if elapsed := time.Since(start); elapsed < after {
		t.Errorf("waited %v, want at least %v", elapsed, after)
	}
}
