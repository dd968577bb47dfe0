package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=5000"`
	GrpcPort             int           `env:"GRPC_PORT,default=50051"`
	JwtSecret            string        `env:"JWT_SECRET,required=true"`
	NotifierKeyHash      string        `env:"NOTIFIER_KEY_HASH"`
	ClientURL            string        `env:"CLIENT_URL,default=http://localhost:3000"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	InboundBufferSize    int           `env:"INBOUND_BUFFER_SIZE,default=64"`
	MaxMessageSize       int64         `env:"MAX_MESSAGE_SIZE,default=1048576"`
	RateLimitPerSecond   float64       `env:"RATE_LIMIT_PER_SECOND,default=20"`
	RateLimitBurst       int           `env:"RATE_LIMIT_BURST,default=40"`
	PingInterval         time.Duration `env:"PING_INTERVAL,default=54s"`
	PongWait             time.Duration `env:"PONG_WAIT,default=60s"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=15s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	UserDirectoryPath    string        `env:"USER_DIRECTORY_PATH"`
}

// Validate checks what the struct tags cannot express.
func (c Config) Validate() error {
	if len(c.JwtSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	for name, d := range map[string]time.Duration{
		"PING_INTERVAL":    c.PingInterval,
		"PONG_WAIT":        c.PongWait,
		"WRITE_TIMEOUT":    c.WriteTimeout,
		"SHUTDOWN_TIMEOUT": c.ShutdownTimeout,
		"METRIC_INTERVAL":  c.MetricInterval,
	} {
		// Tickers panic on non-positive durations.
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.PingInterval >= c.PongWait {
		return fmt.Errorf("PING_INTERVAL (%s) must be shorter than PONG_WAIT (%s)", c.PingInterval, c.PongWait)
	}
	if c.ConnectionBufferSize <= 0 || c.InboundBufferSize <= 0 {
		return fmt.Errorf("buffer sizes must be positive")
	}
	if c.MaxMessageSize <= 0 {
		return fmt.Errorf("MAX_MESSAGE_SIZE must be positive")
	}
	if c.RateLimitPerSecond <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}

// AllowedOrigins splits CLIENT_URL on commas. "*" allows every origin.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.ClientURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
