//go:generate mockgen -source=contracts.go -destination=orderlog_mocks_test.go -package=orderlog_test

package orderlog

import (
	"context"

	"service-gestor/internal/domain"
)

type logRepository interface {
	Insert(ctx context.Context, l *domain.OrderLog) error
	ListByOrder(ctx context.Context, orderID string) ([]domain.OrderLog, error)
}

type counter interface {
	Inc()
}
