package handlers

import (
	"net/http"

	"service-gestor/internal/logx"
)

// BoardHandler serves the column view and drag-and-drop moves.
type BoardHandler struct {
	board  boardUsecase
	logger logx.Logger
}

// NewBoardHandler wires the board usecase into HTTP handlers.
func NewBoardHandler(logger logx.Logger, b boardUsecase) *BoardHandler {
	return &BoardHandler{board: b, logger: logger}
}

// Get handles GET /board.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, boardToResponse(h.board.Columns()))
}

// Refresh handles POST /board/refresh and returns the reloaded board.
func (h *BoardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.board.Refresh(r.Context()); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, boardToResponse(h.board.Columns()))
}

// Move handles POST /board/moves.
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !decodeValid(h.logger, w, r, &req) {
		return
	}

	o, err := h.board.Drop(r.Context(), req.toModel(), actorFrom(r))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}
