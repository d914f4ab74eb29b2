package notify

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
)

type notifier interface {
	Notify(ctx context.Context, change domain.StatusChange) error
}

type counter interface {
	Inc()
}

// RetryConfig describes the backoff of RetryingNotifier.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingNotifier retries transient publish failures with exponential backoff.
type RetryingNotifier struct {
	next    notifier
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingNotifier wraps next. It returns nil when next is nil.
func NewRetryingNotifier(next notifier, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingNotifier {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingNotifier{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Notify publishes change, retrying while the failure looks transient.
func (n *RetryingNotifier) Notify(ctx context.Context, change domain.StatusChange) error {
	var lastErr error
	for attempt := 1; attempt <= n.cfg.MaxAttempts; attempt++ {
		err := n.next.Notify(ctx, change)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == n.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(n.cfg.BaseDelay, n.cfg.MaxDelay, attempt)
		if n.retries != nil {
			n.retries.Inc()
		}
		n.logger.Warn("status notification retry",
			logx.OrderID(change.OrderID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	if errors.Is(err, ErrEncode) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, amqp.ErrClosed) {
		return true
	}
	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		return amqpErr.Recover
	}
	// сетевые ошибки dial/io считаем временными
	return true
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
