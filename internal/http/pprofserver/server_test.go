package pprofserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testlog "service-gestor/internal/testutil"
)

func TestAuthOrLocalOnly(t *testing.T) {
	creds := Config{User: "gestor", Pass: "s3cret"}

	tests := []struct {
		name     string
		cfg      Config
		remote   string
		user     string
		pass     string
		wantCode int
		reason   string
	}{
		{name: "loopback v4 without auth", remote: "127.0.0.1:5050", wantCode: http.StatusAccepted},
		{name: "loopback v6 without auth", remote: "[::1]:5050", wantCode: http.StatusAccepted},
		{name: "remote, nothing configured", remote: "198.51.100.7:40000", wantCode: http.StatusUnauthorized, reason: "no credentials configured"},
		{name: "remote, no header", cfg: creds, remote: "198.51.100.7:40000", wantCode: http.StatusUnauthorized, reason: "bad credentials"},
		{name: "remote, wrong password", cfg: creds, remote: "198.51.100.7:40000", user: "gestor", pass: "nope", wantCode: http.StatusUnauthorized, reason: "bad credentials"},
		{name: "remote, valid credentials", cfg: creds, remote: "198.51.100.7:40000", user: "gestor", pass: "s3cret", wantCode: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testlog.New()
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				reached = true
				w.WriteHeader(http.StatusAccepted)
			})

			req := httptest.NewRequest(http.MethodGet, "/debug/pprof/goroutine", nil)
			req.RemoteAddr = tt.remote
			if tt.user != "" {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rr := httptest.NewRecorder()
			authOrLocalOnly(next, tt.cfg, rec.Logger()).ServeHTTP(rr, req)

			require.Equal(t, tt.wantCode, rr.Code)
			if tt.reason == "" {
				assert.True(t, reached)
				assert.Empty(t, rec.Entries())
				return
			}
			assert.False(t, reached)
			assert.Equal(t, `Basic realm="pprof"`, rr.Header().Get("WWW-Authenticate"))
			entry, ok := rec.Find("warn", "pprof access denied")
			require.True(t, ok)
			reason, _ := entry.Field("reason")
			assert.Equal(t, tt.reason, reason)
			path, _ := entry.Field("path")
			assert.Equal(t, "/debug/pprof/goroutine", path)
		})
	}
}

func TestIsLoopback(t *testing.T) {
	for in, want := range map[string]bool{
		"127.0.0.1:8080": true,
		"127.0.0.1":      true,
		" ::1 ":          true,
		"[::1]:9":        true,
		"10.0.0.3:8080":  false,
		"localhost:80":   false,
		"":               false,
	} {
		assert.Equal(t, want, isLoopback(in), in)
	}
}

func TestSecureEq(t *testing.T) {
	assert.True(t, secureEq("gestor", "gestor"))
	assert.False(t, secureEq("gestor", "gestora"))
	assert.False(t, secureEq("gestor", "gestar"))
	assert.False(t, secureEq("", "x"))
}

func TestHandler_ServesProfilesToLoopback(t *testing.T) {
	h := Handler(Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil)
	req.RemoteAddr = "127.0.0.1:6060"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
