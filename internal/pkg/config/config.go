package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Host     string `env:"HOST,      default=0.0.0.0"`
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs access tokens and keys the stored password MACs.
	JWTSecret   string        `env:"JWT_SECRET, required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,  default=24h"`
	TokenOrg    string        `env:"TOKEN_ORG,  default=blogforge"`
	AuthEnabled bool          `env:"AUTH_ENABLED, default=true"`

	DatabaseURL string `env:"DATABASE_URL, required"`

	LoginMaxAttempts int `env:"LOGIN_MAX_ATTEMPTS, default=10"`

	// SeedUserEmail/SeedUserPassword provision one credential record at
	// startup when both are set.
	SeedUserEmail    string `env:"SEED_USER_EMAIL"`
	SeedUserPassword string `env:"SEED_USER_PASSWORD"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values abort the process.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
