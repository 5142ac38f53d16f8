package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/ib823/sapconnect-sub002/core"
)

func newTestExecutor(cfg ResilienceConfig) *ResilientExecutor {
	executor := NewResilientExecutor(cfg, nil)
	executor.sleep = func(context.Context, time.Duration) error { return nil }
	return executor
}

func TestExecutorRetriesTransientFailures(t *testing.T) {
	executor := newTestExecutor(ResilienceConfig{MaxAttempts: 3})

	calls := 0
	err := executor.Execute(context.Background(), "read_table", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestExecutorExhaustsAttempts(t *testing.T) {
	executor := newTestExecutor(ResilienceConfig{MaxAttempts: 2})

	calls := 0
	err := executor.Execute(context.Background(), "read_table", func(context.Context) error {
		calls++
		return errors.New("timeout")
	})
	if err == nil {
		t.Fatalf("exhausted retries must fail")
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestExecutorDoesNotRetryReadOnlyViolations(t *testing.T) {
	executor := newTestExecutor(ResilienceConfig{MaxAttempts: 5})

	calls := 0
	err := executor.Execute(context.Background(), "read_table", func(context.Context) error {
		calls++
		return GuardReadOnly("DELETE FROM KNA1")
	})
	if err == nil {
		t.Fatalf("guard violation must surface")
	}
	if calls != 1 {
		t.Fatalf("permanent failure must not be retried, got %d attempts", calls)
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) || rich.TextCode != core.AdapterDBErrorReadOnlyViolation {
		t.Fatalf("unexpected error shape: %v", err)
	}
}

func TestExecutorBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	executor := newTestExecutor(ResilienceConfig{
		MaxAttempts:      1,
		FailureThreshold: 2,
		BreakerTimeout:   time.Minute,
	})

	boom := func(context.Context) error { return errors.New("down") }
	for i := 0; i < 2; i++ {
		if err := executor.Execute(context.Background(), "read_table", boom); err == nil {
			t.Fatalf("failure %d must surface", i)
		}
	}

	calls := 0
	err := executor.Execute(context.Background(), "read_table", func(context.Context) error {
		calls++
		return nil
	})
	if err == nil {
		t.Fatalf("open breaker must short-circuit")
	}
	if calls != 0 {
		t.Fatalf("open breaker must not invoke the operation")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) || rich.TextCode != core.AdapterDBErrorConnectionFailed {
		t.Fatalf("unexpected error shape: %v", err)
	}
}

func TestExecutorHonorsContextCancellation(t *testing.T) {
	executor := newTestExecutor(ResilienceConfig{MaxAttempts: 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := executor.Execute(ctx, "read_table", func(context.Context) error {
		t.Fatalf("cancelled context must not execute")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
