package board

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/logx"
)

var (
	// ErrInFlight is returned when a record already has an uncommitted change.
	ErrInFlight = fmt.Errorf("%w: a change for this record is still in flight", apperr.ErrConflict)
	// ErrCommitTimeout is returned when the store did not answer within the commit timeout.
	ErrCommitTimeout = fmt.Errorf("commit timed out: %w", context.DeadlineExceeded)
)

// Command is one optimistic board mutation: the next state of every record it touches
// and the remote write that makes it durable.
type Command struct {
	Orders   []domain.Order
	Couriers []domain.Courier
	Commit   func(ctx context.Context) error

	snap snapshot
}

func (c *Command) keys() []string {
	keys := make([]string, 0, len(c.Orders)+len(c.Couriers))
	for _, o := range c.Orders {
		keys = append(keys, orderKey(o.ID))
	}
	for _, v := range c.Couriers {
		keys = append(keys, courierKey(v.ID))
	}
	return keys
}

func (c *Command) apply(cache *Cache) {
	orderIDs := make([]string, 0, len(c.Orders))
	for _, o := range c.Orders {
		orderIDs = append(orderIDs, o.ID)
	}
	courierIDs := make([]int64, 0, len(c.Couriers))
	for _, v := range c.Couriers {
		courierIDs = append(courierIDs, v.ID)
	}
	c.snap = cache.capture(orderIDs, courierIDs)
	cache.apply(c.Orders, c.Couriers)
}

func (c *Command) rollback(cache *Cache) {
	cache.restore(c.snap)
}

func orderKey(id string) string  { return "order:" + id }
func courierKey(id int64) string { return "courier:" + strconv.FormatInt(id, 10) }

// Coordinator runs commands against the cache: apply locally, commit remotely,
// restore the exact previous state when the commit fails or times out.
type Coordinator struct {
	cache         *Cache
	rollbacks     labeledCounter
	logger        logx.Logger
	commitTimeout time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(cache *Cache, rollbacks labeledCounter, logger logx.Logger, commitTimeout time.Duration) *Coordinator {
	if commitTimeout <= 0 {
		commitTimeout = 5 * time.Second
	}
	return &Coordinator{
		cache:         cache,
		rollbacks:     rollbacks,
		logger:        logger,
		commitTimeout: commitTimeout,
		inflight:      make(map[string]struct{}),
	}
}

// InFlight reports whether the order has an uncommitted change.
func (c *Coordinator) InFlight(orderID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inflight[orderKey(orderID)]
	return ok
}

// Execute runs cmd. Records touched by another running command are rejected with ErrInFlight
// before anything is applied.
func (c *Coordinator) Execute(ctx context.Context, cmd *Command) error {
	keys := cmd.keys()
	if !c.acquire(keys) {
		return ErrInFlight
	}
	defer c.release(keys)

	cmd.apply(c.cache)

	err := c.commit(ctx, cmd)
	if err == nil {
		return nil
	}

	cmd.rollback(c.cache)
	reason := "error"
	if errors.Is(err, context.DeadlineExceeded) {
		reason = "timeout"
	}
	if c.rollbacks != nil {
		c.rollbacks.WithLabelValues(reason).Inc()
	}
	c.logger.Warn("board change rolled back",
		logx.Any("keys", keys),
		logx.String("reason", reason),
		logx.Err(err),
	)
	return classify(err)
}

func (c *Coordinator) commit(ctx context.Context, cmd *Command) error {
	cctx, cancel := context.WithTimeout(ctx, c.commitTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- cmd.Commit(cctx)
	}()

	select {
	case err := <-done:
		if err != nil && cctx.Err() == context.DeadlineExceeded {
			return ErrCommitTimeout
		}
		return err
	case <-cctx.Done():
		if errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return ErrCommitTimeout
		}
		return cctx.Err()
	}
}

// classify keeps domain errors as they are and marks everything else as a remote failure.
func classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, apperr.ErrInvalid),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrNotFound):
		return err
	default:
		return fmt.Errorf("%w: %v", apperr.ErrRemote, err)
	}
}

func (c *Coordinator) acquire(keys []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		if _, busy := c.inflight[k]; busy {
			return false
		}
	}
	for _, k := range keys {
		c.inflight[k] = struct{}{}
	}
	return true
}

func (c *Coordinator) release(keys []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.inflight, k)
	}
}
