//go:generate mockgen -source=contracts.go -destination=board_mocks_test.go -package=board_test

package board

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"service-gestor/internal/domain"
)

type orderStore interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, since time.Time) ([]domain.Order, error)
	UpdateAnnotations(ctx context.Context, id string, a domain.OrderAnnotations) (bool, error)
	AnswerChange(ctx context.Context, id string, a domain.ChangeAnswer) (bool, error)
}

type courierStore interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, status *domain.CourierStatus, limit, offset *int) ([]domain.Courier, error)
}

type auditRecorder interface {
	Record(ctx context.Context, entry domain.OrderLog)
}

type statusNotifier interface {
	Notify(ctx context.Context, change domain.StatusChange) error
}

type labeledCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}
