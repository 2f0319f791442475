package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting of the CRM.
type Config struct {
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// TokenSecret signs session tokens. Required for every command that
	// issues or validates a session.
	TokenSecret string `env:"TOKEN_SECRET"`

	// TokenTTL is the lifetime of a session issued at login.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=2h"`

	// TokenFile is the path of the persisted session file.
	TokenFile string `env:"TOKEN_FILE, default=.token"`

	Database DatabaseConfig
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `env:"DB_HOST, default=localhost"`
	Port     int    `env:"DB_PORT, default=5432"`
	User     string `env:"DB_USER, default=epicevents"`
	Password string `env:"DB_PASSWORD, default=password"`
	DBName   string `env:"DB_NAME, default=epicevents_db"`
	UseSSL   bool   `env:"DB_SSL, default=false"`
}

// LoadConfig reads configuration from the environment. In dev, a local
// .env file is loaded first.
func LoadConfig() (Config, error) {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
