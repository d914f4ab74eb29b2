package handlers

import (
	"context"

	"service-gestor/internal/domain"
	"service-gestor/internal/service/board"
	"service-gestor/internal/service/lifecycle"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type courierUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, status *domain.CourierStatus, limit, offset *int) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error)
}

type boardUsecase interface {
	Columns() board.View
	Refresh(ctx context.Context) error
	Drop(ctx context.Context, m domain.Move, actor string) (domain.Order, error)
}

type orderUsecase interface {
	Order(ctx context.Context, id string) (domain.Order, error)
	Transition(ctx context.Context, id string, req lifecycle.Request) (domain.Order, error)
	Annotate(ctx context.Context, id string, a domain.OrderAnnotations, actor string) (domain.Order, error)
	AnswerChange(ctx context.Context, id string, a domain.ChangeAnswer, actor string) (domain.Order, error)
}

type assignUsecase interface {
	Assign(ctx context.Context, orderID string, courierID int64, actor string) (domain.AssignResult, error)
	Progress(ctx context.Context, orderID string, courierID int64, to domain.OrderStatus) (domain.Order, error)
}

type historyUsecase interface {
	History(ctx context.Context, orderID string) ([]domain.OrderLog, error)
}

type prefsUsecase interface {
	Get(ctx context.Context) (domain.Preferences, error)
	Update(ctx context.Context, p domain.Preferences) (domain.Preferences, error)
}
