package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/http/handlers"
	"service-gestor/internal/service/board"
)

type stubBoard struct {
	columnsFn func() board.View
	refreshFn func(ctx context.Context) error
	dropFn    func(ctx context.Context, m domain.Move, actor string) (domain.Order, error)
}

func (s *stubBoard) Columns() board.View { return s.columnsFn() }

func (s *stubBoard) Refresh(ctx context.Context) error { return s.refreshFn(ctx) }

func (s *stubBoard) Drop(ctx context.Context, m domain.Move, actor string) (domain.Order, error) {
	return s.dropFn(ctx, m, actor)
}

type boardResponse struct {
	Columns map[string][]struct {
		Order struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"order"`
		UnknownStatus bool `json:"unknown_status"`
		InFlight      bool `json:"in_flight"`
	} `json:"columns"`
}

func TestBoardHandler_Get_ListsEveryColumn(t *testing.T) {
	t.Parallel()

	h := handlers.NewBoardHandler(testLogger(), &stubBoard{
		columnsFn: func() board.View {
			return board.View{
				domain.ColumnPreparation: {
					{Order: domain.Order{ID: "a", Status: domain.OrderNew}},
					{Order: domain.Order{ID: "b", Status: "on_hold"}, UnknownStatus: true},
				},
				domain.ColumnReady: {{Order: domain.Order{ID: "c", Status: domain.OrderReady}, InFlight: true}},
			}
		},
	})

	rr := httptest.NewRecorder()
	h.Get(rr, newRequest(http.MethodGet, "/board", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp boardResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Columns, 4)
	require.Len(t, resp.Columns["preparation"], 2)
	assert.True(t, resp.Columns["preparation"][1].UnknownStatus)
	assert.Equal(t, "on_hold", resp.Columns["preparation"][1].Order.Status)
	assert.True(t, resp.Columns["ready"][0].InFlight)
	assert.NotNil(t, resp.Columns["in_route"])
	assert.Empty(t, resp.Columns["done"])
}

func TestBoardHandler_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		refreshed := false
		h := handlers.NewBoardHandler(testLogger(), &stubBoard{
			refreshFn: func(ctx context.Context) error { refreshed = true; return nil },
			columnsFn: func() board.View { return board.View{} },
		})

		rr := httptest.NewRecorder()
		h.Refresh(rr, newRequest(http.MethodPost, "/board/refresh", "", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		require.True(t, refreshed)
	})

	t.Run("store down", func(t *testing.T) {
		t.Parallel()

		h := handlers.NewBoardHandler(testLogger(), &stubBoard{
			refreshFn: func(ctx context.Context) error { return errors.New("conn refused") },
		})

		rr := httptest.NewRecorder()
		h.Refresh(rr, newRequest(http.MethodPost, "/board/refresh", "", nil))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestBoardHandler_Move(t *testing.T) {
	t.Parallel()

	var (
		gotMove  domain.Move
		gotActor string
	)
	h := handlers.NewBoardHandler(testLogger(), &stubBoard{
		dropFn: func(ctx context.Context, m domain.Move, actor string) (domain.Order, error) {
			gotMove, gotActor = m, actor
			return domain.Order{ID: m.OrderID, Status: domain.OrderReady, PickupCode: "4321"}, nil
		},
	})

	body := `{"order_id":"o-1","from":{"column":"preparation","index":2},"to":{"column":"ready","index":0}}`
	req := newRequest(http.MethodPost, "/board/moves", body, nil)
	req.Header.Set("X-User-Email", "gestor@loja.com")
	rr := httptest.NewRecorder()
	h.Move(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, domain.Move{
		OrderID: "o-1",
		From:    domain.Position{Column: domain.ColumnPreparation, Index: 2},
		To:      domain.Position{Column: domain.ColumnReady, Index: 0},
	}, gotMove)
	require.Equal(t, "gestor@loja.com", gotActor)
	require.Contains(t, rr.Body.String(), `"pickup_code":"4321"`)
}

func TestBoardHandler_Move_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		err     error
		want    int
		wantMsg string
	}{
		{
			name: "missing order id",
			body: `{"from":{"column":"ready","index":0},"to":{"column":"done","index":0}}`,
			want: http.StatusBadRequest,
		},
		{
			name: "negative index",
			body: `{"order_id":"o-1","from":{"column":"ready","index":-1},"to":{"column":"done","index":0}}`,
			want: http.StatusBadRequest,
		},
		{
			name:    "rejected move",
			body:    `{"order_id":"o-1","from":{"column":"preparation","index":0},"to":{"column":"in_route","index":0}}`,
			err:     fmt.Errorf("%w: order must be ready first", apperr.ErrInvalid),
			want:    http.StatusBadRequest,
			wantMsg: "order must be ready first",
		},
		{
			name: "in flight",
			body: `{"order_id":"o-1","from":{"column":"ready","index":0},"to":{"column":"done","index":0}}`,
			err:  board.ErrInFlight,
			want: http.StatusConflict,
		},
		{
			name: "rolled back after timeout",
			body: `{"order_id":"o-1","from":{"column":"ready","index":0},"to":{"column":"done","index":0}}`,
			err:  board.ErrCommitTimeout,
			want: http.StatusGatewayTimeout,
		},
		{
			name: "rolled back after store failure",
			body: `{"order_id":"o-1","from":{"column":"ready","index":0},"to":{"column":"done","index":0}}`,
			err:  fmt.Errorf("%w: broken pipe", apperr.ErrRemote),
			want: http.StatusBadGateway,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewBoardHandler(testLogger(), &stubBoard{
				dropFn: func(ctx context.Context, m domain.Move, actor string) (domain.Order, error) {
					if tc.err == nil {
						require.FailNow(t, "Drop should not be called")
					}
					return domain.Order{}, tc.err
				},
			})

			rr := httptest.NewRecorder()
			h.Move(rr, newRequest(http.MethodPost, "/board/moves", tc.body, nil))

			require.Equal(t, tc.want, rr.Code)
			if tc.wantMsg != "" {
				require.Contains(t, rr.Body.String(), tc.wantMsg)
			}
		})
	}
}
