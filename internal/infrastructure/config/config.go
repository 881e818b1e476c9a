package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the console's settings, read from the environment.
type Config struct {
	APIBaseURL  string        `env:"MOVARO_API_URL,      default=http://localhost:8080"`
	TokenPath   string        `env:"MOVARO_TOKEN_PATH"`
	HTTPTimeout time.Duration `env:"MOVARO_HTTP_TIMEOUT, default=30s"`
	LogLevel    string        `env:"LOG_LEVEL,           default=warn"`
	LogPretty   bool          `env:"LOG_PRETTY,          default=true"`
}

// StubConfig holds the development stub API's settings.
type StubConfig struct {
	Port      string        `env:"PORT,       default=8080"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-only-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	LogPretty bool          `env:"LOG_PRETTY, default=true"`
}

// Load reads the console configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// LoadStub reads the stub API configuration from environment variables.
func LoadStub() (*StubConfig, error) {
	var cfg StubConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("load stub configuration: %w", err)
	}
	return &cfg, nil
}

// ResolveTokenPath returns the token database location: TokenPath when set,
// otherwise <user config dir>/movaro/token.db.
func (c *Config) ResolveTokenPath() (string, error) {
	if c.TokenPath != "" {
		return c.TokenPath, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "movaro", "token.db"), nil
}
