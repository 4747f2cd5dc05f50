package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	Redis    RedisConfig
	Breach   BreachConfig
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/accounts"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// BreachConfig controls the breach-password strength check on registration.
//
// Enforce makes registration consult the breach corpus. FailOpen decides what
// happens when the corpus is unreachable: true admits the password (and logs),
// false rejects the registration.
type BreachConfig struct {
	Enforce  bool          `env:"BREACH_CHECK_ENFORCE,   default=true"`
	FailOpen bool          `env:"BREACH_CHECK_FAIL_OPEN, default=true"`
	BaseURL  string        `env:"BREACH_API_URL,         default=https://api.pwnedpasswords.com"`
	Timeout  time.Duration `env:"BREACH_API_TIMEOUT,     default=10s"`
	CacheTTL time.Duration `env:"BREACH_CACHE_TTL,       default=12h"`
}

// IsProduction reports whether the service runs in production mode; it gates
// the Secure attribute on session cookies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
