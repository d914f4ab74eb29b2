package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-gestor/internal/http/handlers"
	obs "service-gestor/internal/http/middleware"
	"service-gestor/internal/http/middleware/ratelimit"
	"service-gestor/internal/logx"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Base    *handlers.Handlers
	Courier *handlers.CourierHandler
	Board   *handlers.BoardHandler
	Order   *handlers.OrderHandler
	Prefs   *handlers.PrefsHandler
}

// New constructs a chi-based http.Handler with base middleware and routes.
// requestTimeout must outlive the board commit timeout so a rollback is reported, not cut off.
func New(h Handlers, logger logx.Logger, rl *ratelimit.Middleware, requestTimeout time.Duration) http.Handler {
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(logger))
	r.Use(middleware.Recoverer)
	if rl != nil {
		r.Use(rl.Handler())
	}
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", h.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(h.Base.NotFound))
	r.MethodNotAllowed(http.HandlerFunc(h.Base.MethodNotAllowed))

	r.Route("/board", func(r chi.Router) {
		r.Get("/", h.Board.Get)
		r.Post("/moves", h.Board.Move)
		r.Post("/refresh", h.Board.Refresh)
	})

	r.Route("/orders/{id}", func(r chi.Router) {
		r.Get("/", h.Order.Get)
		r.Patch("/", h.Order.Annotate)
		r.Get("/logs", h.Order.Logs)
		r.Post("/transitions", h.Order.Transition)
		r.Post("/customer-change", h.Order.AnswerChange)
		r.Post("/courier", h.Order.AssignCourier)
		r.Post("/progress", h.Order.CourierProgress)
	})

	r.Route("/couriers", func(r chi.Router) {
		r.Get("/", h.Courier.List)
		r.Post("/", h.Courier.Create)
		r.Get("/{id}", h.Courier.GetByID)
		r.Patch("/{id}", h.Courier.Update)
	})

	r.Get("/preferences", h.Prefs.Get)
	r.Put("/preferences", h.Prefs.Put)

	return r
}
