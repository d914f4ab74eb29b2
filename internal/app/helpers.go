package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-gestor/internal/logx"
	"service-gestor/internal/repository"
)

const (
	connectAttemptTimeout = 3 * time.Second
	maxConnectDelay       = 10 * time.Second
)

var newPool = repository.NewPool

// connectDbWithRetry waits for Postgres at boot, doubling delay after each failed attempt.
func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	if retries < 1 {
		retries = 1
	}
	var lastErr error
	for attempt := 1; ; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, connectAttemptTimeout)
		pool, err := newPool(attemptCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", attempt))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.Int("attempt", attempt),
			logx.Int("retries", retries),
			logx.Duration("next_in", delay),
			logx.Err(err),
		)
		if attempt == retries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay = nextConnectDelay(delay)
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}

func nextConnectDelay(d time.Duration) time.Duration {
	if d *= 2; d > maxConnectDelay {
		return maxConnectDelay
	}
	return d
}
