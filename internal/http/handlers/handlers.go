package handlers

import (
	"context"
	"net/http"
	"time"

	"service-gestor/internal/logx"
)

const pingTimeout = 2 * time.Second

// Handlers serves the service endpoints that are not tied to a usecase.
type Handlers struct {
	Logger logx.Logger
	db     pinger
}

// New creates the base handlers. db may be nil, then the healthcheck only reports liveness.
func New(logger logx.Logger, db pinger) *Handlers {
	return &Handlers{Logger: logger, db: db}
}

// Ping handles GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead answers 204 while Postgres is reachable and 503 otherwise.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			if h.Logger != nil {
				h.Logger.Warn("healthcheck: postgres unreachable",
					logx.String("req_id", reqID(r.Context())),
					logx.Err(err),
				)
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed returns a JSON 405 for known routes hit with the wrong verb.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "method not allowed")
}
