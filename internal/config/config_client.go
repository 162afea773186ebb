package config

import (
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultClientServerURL      = "http://localhost:3000"
	DefaultClientSessionDB      = "book-share.db"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientConfig is the configuration of the command-line client. It is read
// from BOOKSHARE_* environment variables only; command flags belong to the
// individual commands.
type ClientConfig struct {
	// ServerURL is the base URL of the book-share API.
	// Env: BOOKSHARE_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// SessionDB is the path of the SQLite file that keeps the session.
	// Env: BOOKSHARE_CLIENT_DB
	SessionDB string `env:"CLIENT_DB"`

	// RequestTimeout bounds every API call.
	// Env: BOOKSHARE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogFile receives the client's JSON log. Empty means stderr.
	// Env: BOOKSHARE_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// GetClientConfig builds and validates the client configuration. A .env file
// is honoured the same way as for the server.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().withDotEnv()
	if b.err != nil {
		return nil, fmt.Errorf("error loading client config: %w", b.err)
	}

	cfg := &ClientConfig{}
	if err := parseEnvWithPrefix(cfg, "BOOKSHARE_"); err != nil {
		return nil, err
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultClientServerURL
	}
	if cfg.SessionDB == "" {
		cfg.SessionDB = DefaultClientSessionDB
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, cfg.validate()
}
