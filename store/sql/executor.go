package sqlstore

import (
	"context"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/sony/gobreaker"

	"github.com/ib823/sapconnect-sub002/core"
)

// ResilienceConfig tunes the retry loop and the circuit breaker around source
// database reads.
type ResilienceConfig struct {
	MaxAttempts      int
	BaseDelay        time.Duration
	MaxDelay         time.Duration
	BreakerName      string
	FailureThreshold uint32
	BreakerTimeout   time.Duration
}

func DefaultResilienceConfig() ResilienceConfig {
	return ResilienceConfig{
		MaxAttempts:      3,
		BaseDelay:        200 * time.Millisecond,
		MaxDelay:         5 * time.Second,
		BreakerName:      "source-db",
		FailureThreshold: 5,
		BreakerTimeout:   30 * time.Second,
	}
}

// ResilientExecutor wraps query execution with exponential backoff retries
// and a circuit breaker. The breaker counts whole operations, not individual
// attempts, so one flaky query exhausts its retries before it trips anything.
type ResilientExecutor struct {
	cfg     ResilienceConfig
	breaker *gobreaker.CircuitBreaker
	logger  core.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewResilientExecutor(cfg ResilienceConfig, logger core.Logger) *ResilientExecutor {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 200 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 5 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}
	name := strings.TrimSpace(cfg.BreakerName)
	if name == "" {
		name = "source-db"
	}

	executor := &ResilientExecutor{
		cfg:    cfg,
		logger: logger,
		sleep:  sleepContext,
	}
	executor.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state change",
					"breaker", name,
					"from", from.String(),
					"to", to.String(),
				)
			}
		},
	})
	return executor
}

// Execute runs fn through the breaker, retrying transient failures with
// exponential backoff. Permanent failures (read-only violations, bad input)
// return immediately.
func (e *ResilientExecutor) Execute(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if e == nil || e.breaker == nil {
		return fn(ctx)
	}
	_, err := e.breaker.Execute(func() (any, error) {
		return nil, e.executeWithRetry(ctx, operation, fn)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return goerrors.Wrap(
			err,
			goerrors.CategoryExternal,
			"sqlstore: source database circuit open",
		).WithTextCode(core.AdapterDBErrorConnectionFailed)
	}
	return err
}

func (e *ResilientExecutor) executeWithRetry(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error
	delay := e.cfg.BaseDelay
	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
		if attempt == e.cfg.MaxAttempts {
			break
		}
		if e.logger != nil {
			e.logger.Warn("source database read failed, retrying",
				"operation", operation,
				"attempt", attempt,
				"delay_ms", delay.Milliseconds(),
				"error", lastErr.Error(),
			)
		}
		if err := e.sleep(ctx, delay); err != nil {
			return err
		}
		delay *= 2
		if delay > e.cfg.MaxDelay {
			delay = e.cfg.MaxDelay
		}
	}
	return lastErr
}

// isRetryable treats guard rejections and input errors as permanent;
// everything else (timeouts, connection resets, driver hiccups) is worth
// another attempt.
func isRetryable(err error) bool {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		switch richErr.Category {
		case goerrors.CategoryBadInput, goerrors.CategoryAuthz, goerrors.CategoryValidation:
			return false
		}
		switch richErr.TextCode {
		case core.AdapterDBErrorReadOnlyViolation, core.AdapterDBErrorDriverMissing:
			return false
		}
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
