package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service-gestor settings.
type Config struct {
	Port            int
	DB              DB
	Board           Board
	LateOrders      LateOrders
	Store           Store
	Kafka           Kafka
	RabbitMQ        RabbitMQ
	Notify          Notify
	PreferencesPath string
	LogFormat       string
	RateLimit       RateLimit
	Pprof           PprofConfig
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name)
}

// Board stores board cache settings.
type Board struct {
	PollInterval  time.Duration
	CommitTimeout time.Duration
	// Window is how long finished orders stay listed.
	Window time.Duration
}

// LateOrders stores late-order monitor settings.
type LateOrders struct {
	Interval time.Duration
}

// Store is the store location stamped on assigned orders.
type Store struct {
	Latitude  float64
	Longitude float64
}

// Kafka stores order event consumer settings. Empty Brokers disables the worker consumer.
type Kafka struct {
	Brokers     []string
	GroupID     string
	OrdersTopic string
}

// RabbitMQ stores status broadcast settings. Empty URL disables publishing.
type RabbitMQ struct {
	URL      string
	Exchange string
}

// Notify stores retry settings for status notifications.
type Notify struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores write rate limit settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// PprofConfig stores pprof server settings.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:            defaultPort,
		DB:              defaultDB,
		Board:           defaultBoard,
		LateOrders:      defaultLateOrders,
		Kafka:           Kafka{GroupID: defaultKafkaGroupID, OrdersTopic: defaultKafkaTopic},
		RabbitMQ:        RabbitMQ{Exchange: defaultRabbitExchange},
		Notify:          defaultNotify,
		PreferencesPath: defaultPreferencesPath,
		LogFormat:       defaultLogFormat,
		RateLimit:       defaultRateLimit,
		Pprof:           defaultPprof,
	}

	e := &envReader{}
	e.int("PORT", &cfg.Port)

	e.str("POSTGRES_HOST", &cfg.DB.Host)
	e.str("POSTGRES_PORT", &cfg.DB.Port)
	e.str("POSTGRES_USER", &cfg.DB.User)
	e.str("POSTGRES_PASSWORD", &cfg.DB.Pass)
	e.str("POSTGRES_DB", &cfg.DB.Name)

	e.duration("BOARD_POLL_INTERVAL", &cfg.Board.PollInterval)
	e.duration("BOARD_COMMIT_TIMEOUT", &cfg.Board.CommitTimeout)
	e.duration("BOARD_WINDOW", &cfg.Board.Window)
	e.duration("LATE_ORDERS_INTERVAL", &cfg.LateOrders.Interval)
	e.float("STORE_LATITUDE", &cfg.Store.Latitude)
	e.float("STORE_LONGITUDE", &cfg.Store.Longitude)

	e.list("KAFKA_BROKERS", &cfg.Kafka.Brokers)
	e.str("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)
	e.str("KAFKA_ORDERS_TOPIC", &cfg.Kafka.OrdersTopic)

	e.str("RABBITMQ_URL", &cfg.RabbitMQ.URL)
	e.str("RABBITMQ_EXCHANGE", &cfg.RabbitMQ.Exchange)
	e.int("NOTIFY_MAX_ATTEMPTS", &cfg.Notify.MaxAttempts)
	e.duration("NOTIFY_BASE_DELAY", &cfg.Notify.BaseDelay)
	e.duration("NOTIFY_MAX_DELAY", &cfg.Notify.MaxDelay)

	e.str("PREFERENCES_PATH", &cfg.PreferencesPath)
	e.str("LOG_FORMAT", &cfg.LogFormat)

	e.bool("RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled)
	e.float("RATE_LIMIT_RATE", &cfg.RateLimit.Rate)
	e.int("RATE_LIMIT_BURST", &cfg.RateLimit.Burst)
	e.duration("RATE_LIMIT_TTL", &cfg.RateLimit.TTL)
	e.int("RATE_LIMIT_MAX_BUCKETS", &cfg.RateLimit.MaxBuckets)

	e.bool("PPROF_ENABLED", &cfg.Pprof.Enabled)
	e.str("PPROF_ADDR", &cfg.Pprof.Addr)
	e.str("PPROF_USER", &cfg.Pprof.User)
	e.str("PPROF_PASSWORD", &cfg.Pprof.Pass)

	if e.err != nil {
		return nil, e.err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.PreferencesPath, "preferences", cfg.PreferencesPath, "path to the gestor preferences file")
	pflag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log output: json or zerolog")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if p, err := strconv.Atoi(c.DB.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid POSTGRES_PORT: %q", c.DB.Port)
	}
	if c.Board.PollInterval <= 0 {
		return fmt.Errorf("invalid BOARD_POLL_INTERVAL: %s", c.Board.PollInterval)
	}
	if c.Board.CommitTimeout <= 0 {
		return fmt.Errorf("invalid BOARD_COMMIT_TIMEOUT: %s", c.Board.CommitTimeout)
	}
	if c.LateOrders.Interval <= 0 {
		return fmt.Errorf("invalid LATE_ORDERS_INTERVAL: %s", c.LateOrders.Interval)
	}
	if c.Store.Latitude < -90 || c.Store.Latitude > 90 || c.Store.Longitude < -180 || c.Store.Longitude > 180 {
		return fmt.Errorf("invalid store location: %v,%v", c.Store.Latitude, c.Store.Longitude)
	}
	if c.Notify.MaxAttempts <= 0 {
		return fmt.Errorf("invalid NOTIFY_MAX_ATTEMPTS: %d", c.Notify.MaxAttempts)
	}
	switch c.LogFormat {
	case "json", "zerolog":
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %q", c.LogFormat)
	}
	if strings.TrimSpace(c.PreferencesPath) == "" {
		return errors.New("PREFERENCES_PATH is required")
	}
	return nil
}

// envReader keeps defaults for unset variables and remembers the first bad value.
type envReader struct {
	err error
}

func (e *envReader) lookup(key string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func (e *envReader) fail(key, v string, err error) {
	e.err = fmt.Errorf("invalid %s=%q: %w", key, v, err)
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.lookup(key); ok {
		*dst = v
	}
}

func (e *envReader) int(key string, dst *int) {
	if v, ok := e.lookup(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) float(key string, dst *float64) {
	if v, ok := e.lookup(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (e *envReader) bool(key string, dst *bool) {
	if v, ok := e.lookup(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (e *envReader) duration(key string, dst *time.Duration) {
	if v, ok := e.lookup(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = d
	}
}

func (e *envReader) list(key string, dst *[]string) {
	if v, ok := e.lookup(key); ok {
		var out []string
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		*dst = out
	}
}
