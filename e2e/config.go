package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config targets a running hub. The suites skip when HUB_WS_URL is unset.
type Config struct {
	WsURL    string `envconfig:"HUB_WS_URL"`
	GrpcAddr string `envconfig:"HUB_GRPC_ADDR" default:"localhost:50051"`
	// Must match the hub's JWT_SECRET to mint tokens
	JwtSecret string `envconfig:"JWT_SECRET"`
	// Plain service key whose hash is the hub's NOTIFIER_KEY_HASH
	NotifierKey string `envconfig:"NOTIFIER_KEY"`
	Origin      string `envconfig:"E2E_ORIGIN" default:"http://localhost:3000"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
