package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	environ := env.EnvSet{"JWT_SECRET": "a-secret-of-decent-length"}

	var config Config
	err := env.Unmarshal(environ, &config)
	req.NoError(err)

	req.Equal(5000, config.Port)
	req.Equal(50051, config.GrpcPort)
	req.Equal(54*time.Second, config.PingInterval)
	req.Equal(60*time.Second, config.PongWait)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.Equal([]string{"http://localhost:3000"}, config.AllowedOrigins())
	req.Empty(config.UserDirectoryPath)
	req.NoError(config.Validate())
}

func TestConfig_RequiresSecret(t *testing.T) {
	var config Config
	err := env.Unmarshal(env.EnvSet{}, &config)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			JwtSecret: "a-secret-of-decent-length", PingInterval: time.Second, PongWait: 2 * time.Second,
			WriteTimeout: time.Second, ShutdownTimeout: time.Second, MetricInterval: time.Second,
			ConnectionBufferSize: 1, InboundBufferSize: 1, MaxMessageSize: 1, RateLimitPerSecond: 1, RateLimitBurst: 1,
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"short secret", func(c *Config) { c.JwtSecret = "short" }},
		{"ping after pong wait", func(c *Config) { c.PingInterval = 3 * time.Second }},
		{"no outbound buffer", func(c *Config) { c.ConnectionBufferSize = 0 }},
		{"no message size", func(c *Config) { c.MaxMessageSize = 0 }},
		{"no rate", func(c *Config) { c.RateLimitPerSecond = 0 }},
		{"zero ping interval", func(c *Config) { c.PingInterval = 0 }},
		{"negative ping interval", func(c *Config) { c.PingInterval = -time.Second }},
		{"negative ping and pong", func(c *Config) { c.PingInterval, c.PongWait = -2*time.Second, -time.Second }},
		{"zero write timeout", func(c *Config) { c.WriteTimeout = 0 }},
		{"negative write timeout", func(c *Config) { c.WriteTimeout = -time.Second }},
		{"zero metric interval", func(c *Config) { c.MetricInterval = 0 }},
		{"negative metric interval", func(c *Config) { c.MetricInterval = -time.Second }},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestConfig_AllowedOrigins(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"https://a.example", "https://b.example"}, Config{ClientURL: " https://a.example, ,https://b.example"}.AllowedOrigins())
	req.Equal([]string{"*"}, Config{ClientURL: "*"}.AllowedOrigins())
}
