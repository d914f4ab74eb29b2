package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-gestor/internal/config"
	"service-gestor/internal/metrics"
	testlog "service-gestor/internal/testutil"
)

type frozenClock struct{ t time.Time }

func (c frozenClock) Now() time.Time { return c.t }

func postBoardMove(h http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/board/moves", nil)
	req.Header.Set("X-User-Email", "gestor@loja.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	t.Run("disabled lets every write through", func(t *testing.T) {
		t.Parallel()

		rec := testlog.New()
		counter := metrics.NewRateLimitExceededTotal()
		cfg := testConfig()

		h := newRateLimitMiddleware(rateLimitIn{Config: cfg, Logger: rec.Logger(), Counter: counter}).Handler()(ok)
		for i := 0; i < 5; i++ {
			require.Equal(t, http.StatusNoContent, postBoardMove(h).Code)
		}
		assert.True(t, rec.Has("info", "rate limit disabled"))
		assert.Zero(t, testutil.ToFloat64(counter))
	})

	t.Run("enabled throttles beyond burst", func(t *testing.T) {
		t.Parallel()

		rec := testlog.New()
		counter := metrics.NewRateLimitExceededTotal()
		cfg := testConfig()
		cfg.RateLimit = config.RateLimit{Enabled: true, Rate: 0.5, Burst: 2, TTL: time.Minute, MaxBuckets: 10}

		h := newRateLimitMiddleware(rateLimitIn{
			Config:  cfg,
			Logger:  rec.Logger(),
			Counter: counter,
			Clock:   frozenClock{t: time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)},
		}).Handler()(ok)

		require.Equal(t, http.StatusNoContent, postBoardMove(h).Code)
		require.Equal(t, http.StatusNoContent, postBoardMove(h).Code)

		rr := postBoardMove(h)
		require.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "2", rr.Header().Get("Retry-After"))
		assert.True(t, rec.Has("info", "rate limit enabled"))
		assert.Equal(t, 1.0, testutil.ToFloat64(counter))
	})
}
