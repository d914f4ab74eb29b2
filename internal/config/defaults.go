package config

import "time"

const (
	defaultPort            = 8080
	defaultPreferencesPath = "gestor-preferences.yaml"
	defaultLogFormat       = "json"
	defaultRabbitExchange  = "order_status_fanout"
	defaultKafkaGroupID    = "service-gestor"
	defaultKafkaTopic      = "orders.events"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultBoard = Board{
	PollInterval:  3 * time.Second,
	CommitTimeout: 5 * time.Second,
	Window:        24 * time.Hour,
}

var defaultLateOrders = LateOrders{
	Interval: 60 * time.Second,
}

var defaultNotify = Notify{
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       5,
	Burst:      10,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = PprofConfig{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultBoard returns the default board settings.
func DefaultBoard() Board {
	return defaultBoard
}

// DefaultLateOrders returns the default late-order monitor settings.
func DefaultLateOrders() LateOrders {
	return defaultLateOrders
}

// DefaultNotify returns the default notification retry settings.
func DefaultNotify() Notify {
	return defaultNotify
}
