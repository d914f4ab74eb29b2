package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"service-gestor/internal/logx"
	"service-gestor/internal/service/lifecycle"
)

// OrderHandler serves a single order: details, history and operator actions.
type OrderHandler struct {
	orders  orderUsecase
	assign  assignUsecase
	history historyUsecase
	logger  logx.Logger
}

// NewOrderHandler wires the order usecases into HTTP handlers.
func NewOrderHandler(logger logx.Logger, orders orderUsecase, assign assignUsecase, history historyUsecase) *OrderHandler {
	return &OrderHandler{orders: orders, assign: assign, history: history, logger: logger}
}

func orderID(w http.ResponseWriter, r *http.Request, logger logx.Logger) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(logger, w, r, http.StatusBadRequest, "invalid id")
		return "", false
	}
	return id, true
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r, h.logger)
	if !ok {
		return
	}
	o, err := h.orders.Order(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}

// Logs handles GET /orders/{id}/logs, oldest entry first.
func (h *OrderHandler) Logs(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r, h.logger)
	if !ok {
		return
	}
	list, err := h.history.History(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, logsToResponse(list))
}

// Transition handles POST /orders/{id}/transitions.
func (h *OrderHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r, h.logger)
	if !ok {
		return
	}
	var req transitionRequest
	if !decodeValid(h.logger, w, r, &req) {
		return
	}

	o, err := h.orders.Transition(r.Context(), id, lifecycle.Request{
		To:       req.To,
		PrepTime: req.PrepTime,
		Reason:   req.Reason,
		Origin:   lifecycle.OriginOperator,
		Actor:    actorFrom(r),
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}

// Annotate handles PATCH /orders/{id}: priority and internal notes only.
func (h *OrderHandler) Annotate(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r, h.logger)
	if !ok {
		return
	}
	var req annotateRequest
	if !decodeValid(h.logger, w, r, &req) {
		return
	}

	o, err := h.orders.Annotate(r.Context(), id, req.toModel(), actorFrom(r))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}

// AnswerChange handles POST /orders/{id}/customer-change.
func (h *OrderHandler) AnswerChange(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r, h.logger)
	if !ok {
		return
	}
	var req changeAnswerRequest
	if !decodeValid(h.logger, w, r, &req) {
		return
	}

	o, err := h.orders.AnswerChange(r.Context(), id, req.toModel(), actorFrom(r))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}

// AssignCourier handles POST /orders/{id}/courier.
func (h *OrderHandler) AssignCourier(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r, h.logger)
	if !ok {
		return
	}
	var req assignRequest
	if !decodeValid(h.logger, w, r, &req) {
		return
	}

	res, err := h.assign.Assign(r.Context(), id, req.CourierID, actorFrom(r))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignResponse{
		OrderID:   res.OrderID,
		CourierID: res.CourierID,
		Status:    res.Status,
	})
}

// CourierProgress handles POST /orders/{id}/progress, a step reported by the assigned courier.
func (h *OrderHandler) CourierProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r, h.logger)
	if !ok {
		return
	}
	var req progressRequest
	if !decodeValid(h.logger, w, r, &req) {
		return
	}

	o, err := h.assign.Progress(r.Context(), id, req.CourierID, req.Status)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}
