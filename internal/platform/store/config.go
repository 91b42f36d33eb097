package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string
	Version string

	CH CHConfig
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled  bool
	URL      string
	User     string
	Password string
	Database string

	DialTimeout      time.Duration
	ReadTimeout      time.Duration
	MaxExecutionTime int

	// Guard/boot knobs:
	ConnectRetries int           // default 6 (~31s max with exponential backoff)
	PingTimeout    time.Duration // default 3s
}
