package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gestor/internal/config"
	"service-gestor/internal/logx"
	"service-gestor/internal/repository"
	"service-gestor/internal/service/assignment"
	"service-gestor/internal/service/board"
	"service-gestor/internal/service/courier"
	"service-gestor/internal/service/lateorders"
	"service-gestor/internal/service/lifecycle"
	"service-gestor/internal/service/orderlog"
	"service-gestor/internal/service/orders"
	"service-gestor/internal/service/prefs"
)

const (
	storeTimeout    = 3 * time.Second
	orderLogTimeout = 2 * time.Second
)

type pollInterval time.Duration

type lateInterval time.Duration

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		repository.NewCourierRepo,
		repository.NewOrderLogRepo,
		repository.NewLifecycleRepo,
		func(cfg *config.Config) *repository.PrefsFile {
			return repository.NewPrefsFile(cfg.PreferencesPath)
		},
		func() *lifecycle.Machine { return lifecycle.NewMachine(nil) },
		board.NewCache,
		newCoordinator,
		newOrderLogRecorder,
		provideNotifier,
		newBoardService,
		newAssignmentManager,
		func(f *repository.PrefsFile, logger logx.Logger) *prefs.Service {
			return prefs.NewService(f, logger)
		},
		newLateMonitor,
		func(repo *repository.CourierRepo) *courier.Service {
			return courier.NewService(repo, storeTimeout)
		},
		func(repo *repository.OrderRepo, b *board.Service, rec *orderlog.Recorder, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(repo, b, rec, logger)
		},
	)
}

type coordinatorIn struct {
	dig.In
	Cache     *board.Cache
	Rollbacks *prometheus.CounterVec `name:"board_rollbacks_total"`
	Logger    logx.Logger
	Config    *config.Config
}

func newCoordinator(in coordinatorIn) *board.Coordinator {
	return board.NewCoordinator(in.Cache, in.Rollbacks, in.Logger, in.Config.Board.CommitTimeout)
}

type orderLogIn struct {
	dig.In
	Repo     *repository.OrderLogRepo
	Failures prometheus.Counter `name:"orderlog_write_failures_total"`
	Logger   logx.Logger
}

func newOrderLogRecorder(in orderLogIn) *orderlog.Recorder {
	return orderlog.NewRecorder(in.Repo, in.Failures, in.Logger, orderLogTimeout)
}

type boardIn struct {
	dig.In
	Config      *config.Config
	Cache       *board.Cache
	Coordinator *board.Coordinator
	Machine     *lifecycle.Machine
	Orders      *repository.OrderRepo
	Couriers    *repository.CourierRepo
	Tx          *repository.LifecycleRepo
	Recorder    *orderlog.Recorder
	Notifier    statusNotifier
	Transitions *prometheus.CounterVec `name:"order_transitions_total"`
	Logger      logx.Logger
}

func newBoardService(in boardIn) *board.Service {
	return board.NewService(board.Deps{
		Cache:       in.Cache,
		Coordinator: in.Coordinator,
		Machine:     in.Machine,
		Orders:      in.Orders,
		Couriers:    in.Couriers,
		Tx:          in.Tx,
		Recorder:    in.Recorder,
		Notifier:    in.Notifier,
		Transitions: in.Transitions,
		Logger:      in.Logger,
		Window:      in.Config.Board.Window,
	})
}

func newAssignmentManager(
	cfg *config.Config,
	b *board.Service,
	tx *repository.LifecycleRepo,
	machine *lifecycle.Machine,
	logger logx.Logger,
) *assignment.Manager {
	store := assignment.StoreLocation{Latitude: cfg.Store.Latitude, Longitude: cfg.Store.Longitude}
	return assignment.NewManager(b, tx, machine, store, logger)
}

type lateMonitorIn struct {
	dig.In
	Board     *board.Service
	Prefs     *prefs.Service
	Cancelled prometheus.Counter `name:"late_orders_cancelled_total"`
	Logger    logx.Logger
}

func newLateMonitor(in lateMonitorIn) *lateorders.Monitor {
	return lateorders.NewMonitor(in.Board, in.Prefs, in.Cancelled, in.Logger)
}
