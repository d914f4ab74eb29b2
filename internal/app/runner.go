package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-gestor/internal/logx"
	"service-gestor/internal/service/board"
	"service-gestor/internal/service/lateorders"
)

const shutdownTimeout = 15 * time.Second

type refresher interface {
	Refresh(ctx context.Context) error
}

type sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Runner runs the HTTP service together with the board poller and the late-order monitor.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the service using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := loggerFrom(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		log.Fatalf("run error: %v", err)
	}
}

func loggerFrom(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

type runIn struct {
	dig.In
	Ctx     context.Context
	Server  *http.Server
	Pprof   *http.Server `name:"pprof_server" optional:"true"`
	Pool    *pgxpool.Pool
	Logger  logx.Logger
	Board   *board.Service
	Monitor *lateorders.Monitor
	Poll    pollInterval
	Late    lateInterval
	Closer  notifyCloser
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	if err := in.Board.Refresh(in.Ctx); err != nil {
		in.Logger.Warn("initial board load failed", logx.Err(err))
	}

	var loops sync.WaitGroup
	startLoop(in.Ctx, &loops, time.Duration(in.Poll), func(ctx context.Context) {
		pollOnce(ctx, in.Logger, in.Board)
	})
	startLoop(in.Ctx, &loops, time.Duration(in.Late), func(ctx context.Context) {
		sweepOnce(ctx, in.Logger, in.Monitor)
	})

	startServer(in.Server, in.Logger, "service-gestor")
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof")
	}

	waitForShutdown(in.Ctx, in.Logger)
	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	loops.Wait()
	in.Board.Wait()
	closeResources(in.Pool, in.Closer, in.Logger)
	return in.Ctx.Err()
}

// startLoop calls tick every interval until ctx is done.
func startLoop(ctx context.Context, wg *sync.WaitGroup, interval time.Duration, tick func(context.Context)) {
	if interval <= 0 {
		return
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				tick(ctx)
			}
		}
	}()
}

func pollOnce(ctx context.Context, logger logx.Logger, r refresher) {
	if err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
		// доска остаётся на последнем успешном снимке
		logger.Warn("board refresh failed", logx.Err(err))
	}
}

func sweepOnce(ctx context.Context, logger logx.Logger, s sweeper) {
	n, err := s.Sweep(ctx)
	if err != nil && ctx.Err() == nil {
		logger.Warn("late order sweep failed", logx.Err(err))
		return
	}
	if n > 0 {
		logger.Info("late order sweep finished", logx.Int("cancelled", n))
	}
}

func startServer(server *http.Server, logger logx.Logger, name string) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.String("server", name), logx.Err(err))
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down service-gestor")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, closer notifyCloser, logger logx.Logger) {
	if closer != nil {
		if err := closer(); err != nil {
			logger.Warn("notifier close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
