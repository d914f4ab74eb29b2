package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"service-gestor/internal/apperr"
	"service-gestor/internal/domain"
	"service-gestor/internal/http/handlers"
)

type stubPrefs struct {
	getFn    func(ctx context.Context) (domain.Preferences, error)
	updateFn func(ctx context.Context, p domain.Preferences) (domain.Preferences, error)
}

func (s *stubPrefs) Get(ctx context.Context) (domain.Preferences, error) { return s.getFn(ctx) }

func (s *stubPrefs) Update(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	return s.updateFn(ctx, p)
}

func TestPrefsHandler_Get(t *testing.T) {
	t.Parallel()

	h := handlers.NewPrefsHandler(testLogger(), &stubPrefs{
		getFn: func(ctx context.Context) (domain.Preferences, error) { return domain.DefaultPreferences(), nil },
	})

	rr := httptest.NewRecorder()
	h.Get(rr, newRequest(http.MethodGet, "/preferences", "", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t,
		`{"auto_cancel_enabled":true,"late_tolerance_minutes":10,"default_prep_time":30,"sound_alerts":true}`,
		rr.Body.String())
}

func TestPrefsHandler_Put(t *testing.T) {
	t.Parallel()

	var got domain.Preferences
	h := handlers.NewPrefsHandler(testLogger(), &stubPrefs{
		updateFn: func(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
			got = p
			return p, nil
		},
	})

	body := `{"auto_cancel_enabled":false,"late_tolerance_minutes":15,"default_prep_time":40,"sound_alerts":false}`
	rr := httptest.NewRecorder()
	h.Put(rr, newRequest(http.MethodPut, "/preferences", body, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, domain.Preferences{LateToleranceMinutes: 15, DefaultPrepTime: 40}, got)
}

func TestPrefsHandler_Put_Rejected(t *testing.T) {
	t.Parallel()

	h := handlers.NewPrefsHandler(testLogger(), &stubPrefs{
		updateFn: func(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
			return domain.Preferences{}, apperr.ErrInvalid
		},
	})

	rr := httptest.NewRecorder()
	h.Put(rr, newRequest(http.MethodPut, "/preferences", `{"late_tolerance_minutes":500,"default_prep_time":30}`, nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	h.Put(rr, newRequest(http.MethodPut, "/preferences", `{"late_tolerance_minutes":-1}`, nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
