package app

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gestor/internal/config"
	"service-gestor/internal/http/handlers"
	"service-gestor/internal/http/middleware/ratelimit"
	"service-gestor/internal/http/pprofserver"
	"service-gestor/internal/http/router"
	"service-gestor/internal/logx"
	"service-gestor/internal/service/assignment"
	"service-gestor/internal/service/board"
	"service-gestor/internal/service/courier"
	"service-gestor/internal/service/orderlog"
	"service-gestor/internal/service/prefs"
)

// requestSlack is added to the commit timeout so a rolled back change still gets its answer.
const requestSlack = 5 * time.Second

func newBaseHandler(logger logx.Logger, pool *pgxpool.Pool) *handlers.Handlers {
	return handlers.New(logger, pool)
}

func newCourierHandler(logger logx.Logger, s *courier.Service) *handlers.CourierHandler {
	return handlers.NewCourierHandler(logger, s)
}

func newBoardHandler(logger logx.Logger, b *board.Service) *handlers.BoardHandler {
	return handlers.NewBoardHandler(logger, b)
}

func newOrderHandler(logger logx.Logger, b *board.Service, m *assignment.Manager, rec *orderlog.Recorder) *handlers.OrderHandler {
	return handlers.NewOrderHandler(logger, b, m, rec)
}

func newPrefsHandler(logger logx.Logger, p *prefs.Service) *handlers.PrefsHandler {
	return handlers.NewPrefsHandler(logger, p)
}

type routerIn struct {
	dig.In
	Config    *config.Config
	Logger    logx.Logger
	RateLimit *ratelimit.Middleware
	Base      *handlers.Handlers
	Courier   *handlers.CourierHandler
	Board     *handlers.BoardHandler
	Order     *handlers.OrderHandler
	Prefs     *handlers.PrefsHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Handlers{
		Base:    in.Base,
		Courier: in.Courier,
		Board:   in.Board,
		Order:   in.Order,
		Prefs:   in.Prefs,
	}, in.Logger, in.RateLimit, in.Config.Board.CommitTimeout+requestSlack)
}

type pprofOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

// newPprofServer provides a nil server when profiling is disabled.
func newPprofServer(cfg *config.Config, logger logx.Logger) pprofOut {
	if !cfg.Pprof.Enabled {
		return pprofOut{}
	}
	return pprofOut{Server: &http.Server{
		Addr: cfg.Pprof.Addr,
		Handler: pprofserver.Handler(pprofserver.Config{
			User: cfg.Pprof.User,
			Pass: cfg.Pprof.Pass,
		}, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

type rateLimitIn struct {
	dig.In
	Config  *config.Config
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Clock   ratelimit.Clock    `optional:"true"`
}

// newRateLimitMiddleware throttles board writes per client, or lets everything through when disabled.
func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	rl := in.Config.RateLimit
	if !rl.Enabled {
		in.Logger.Info("rate limit disabled")
		return ratelimit.New(in.Logger, in.Counter, ratelimit.NewNopLimiter())
	}
	in.Logger.Info("rate limit enabled",
		logx.Any("rate", rl.Rate),
		logx.Int("burst", rl.Burst),
		logx.Int("max_buckets", rl.MaxBuckets),
	)
	return ratelimit.New(in.Logger, in.Counter, ratelimit.NewTokenBucketLimiter(in.Clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	}))
}
