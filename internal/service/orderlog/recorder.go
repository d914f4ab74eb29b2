package orderlog

import (
	"context"
	"strings"
	"time"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
)

// Recorder appends audit entries. Write failures never reach the caller.
type Recorder struct {
	repo             logRepository
	failures         counter
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewRecorder creates a Recorder.
func NewRecorder(repo logRepository, failures counter, logger logx.Logger, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Recorder{
		repo:             repo,
		failures:         failures,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// Record stores entry. The write is detached from ctx cancellation so a finished
// request does not drop its audit entry.
func (r *Recorder) Record(ctx context.Context, entry domain.OrderLog) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.now()
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.operationTimeout)
	defer cancel()

	if err := r.repo.Insert(wctx, &entry); err != nil {
		if r.failures != nil {
			r.failures.Inc()
		}
		r.logger.Warn("order log write failed",
			logx.OrderID(entry.OrderID),
			logx.String("action", entry.Action),
			logx.String("new_status", string(entry.NewStatus)),
			logx.Err(err),
		)
	}
}

// History returns the entries of one order, oldest first.
func (r *Recorder) History(ctx context.Context, orderID string) ([]domain.OrderLog, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, r.operationTimeout)
	defer cancel()
	return r.repo.ListByOrder(ctx, orderID)
}
