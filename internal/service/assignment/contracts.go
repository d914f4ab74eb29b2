package assignment

import (
	"context"

	"service-gestor/internal/domain"
	"service-gestor/internal/service/board"
	"service-gestor/internal/service/lifecycle"
)

type boardService interface {
	Order(ctx context.Context, id string) (domain.Order, error)
	Courier(ctx context.Context, id int64) (domain.Courier, error)
	Execute(ctx context.Context, cmd *board.Command) error
	Transition(ctx context.Context, id string, req lifecycle.Request) (domain.Order, error)
	Committed(ctx context.Context, ch board.Change)
}
