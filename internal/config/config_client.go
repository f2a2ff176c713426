package config

import (
	"fmt"
	"time"
)

// ClientConfig holds the settings of the command-line API client.
type ClientConfig struct {
	// ServerURL is the base URL of the server, e.g. "http://localhost:5000".
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:5000"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// Token is the session token sent as x-auth-token.
	Token string `env:"TOKEN"`
}

// GetClientConfig reads the client configuration from FEED_* environment
// variables and validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnvWithPrefix(cfg, "FEED_"); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, cfg.validate()
}
