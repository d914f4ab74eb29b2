package app

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gestor/internal/config"
	"service-gestor/internal/domain"
	"service-gestor/internal/gateway/notify"
	"service-gestor/internal/logx"
)

type statusNotifier interface {
	Notify(ctx context.Context, change domain.StatusChange) error
}

// notifyCloser releases the broker connection, if any.
type notifyCloser func() error

type notifierIn struct {
	dig.In
	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"notify_retries_total"`
}

type notifierOut struct {
	dig.Out
	Notifier statusNotifier
	Closer   notifyCloser
}

var dialBroker = notify.Dial

// provideNotifier publishes to RabbitMQ when RABBITMQ_URL is set. Without a broker,
// or when it is unreachable at start, changes are only logged.
func provideNotifier(in notifierIn) notifierOut {
	nop := notifierOut{
		Notifier: notify.NewNop(in.Logger),
		Closer:   func() error { return nil },
	}
	if strings.TrimSpace(in.Config.RabbitMQ.URL) == "" {
		in.Logger.Info("rabbitmq not configured, status notifications disabled")
		return nop
	}

	conn, err := dialBroker(in.Config.RabbitMQ.URL)
	if err != nil {
		in.Logger.Warn("rabbitmq unavailable, status notifications disabled", logx.Err(err))
		return nop
	}

	pub := notify.NewPublisher(conn, in.Config.RabbitMQ.Exchange)
	retrying := notify.NewRetryingNotifier(pub, in.Logger, in.Retries, notify.RetryConfig{
		MaxAttempts: in.Config.Notify.MaxAttempts,
		BaseDelay:   in.Config.Notify.BaseDelay,
		MaxDelay:    in.Config.Notify.MaxDelay,
	})
	in.Logger.Info("status notifications enabled", logx.String("exchange", in.Config.RabbitMQ.Exchange))
	return notifierOut{Notifier: retrying, Closer: pub.Close}
}
