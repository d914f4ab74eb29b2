package handlers

import (
	"net/http"

	"service-gestor/internal/logx"
)

// PrefsHandler serves the gestor preferences.
type PrefsHandler struct {
	prefs  prefsUsecase
	logger logx.Logger
}

// NewPrefsHandler wires the preferences usecase into HTTP handlers.
func NewPrefsHandler(logger logx.Logger, p prefsUsecase) *PrefsHandler {
	return &PrefsHandler{prefs: p, logger: logger}
}

// Get handles GET /preferences.
func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.prefs.Get(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, prefsToResponse(p))
}

// Put handles PUT /preferences. The whole document is replaced.
func (h *PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req preferencesDTO
	if !decodeValid(h.logger, w, r, &req) {
		return
	}

	p, err := h.prefs.Update(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, prefsToResponse(p))
}
