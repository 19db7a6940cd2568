package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime options, read from the environment and overridden by flags.
type Config struct {
	PhoneNumber string `envconfig:"PHONE_NUMBER"`

	Binary            string        `envconfig:"SIGNAL_CLI_BIN" default:"signal-cli" validate:"required"`
	ConfigDir         string        `envconfig:"SIGNAL_CLI_CONFIG_DIR"`
	Timeout           time.Duration `envconfig:"SIGNAL_CLI_TIMEOUT" default:"30s" validate:"gt=0"`
	DataDirs          []string      `envconfig:"SIGNAL_CLI_DATA_DIRS"`
	RateLimitPhrases  []string      `envconfig:"SIGNAL_CLI_RATE_LIMIT_PHRASES" default:"Rate Limited" validate:"min=1,dive,required"`
	RateLimitExitCode int           `envconfig:"SIGNAL_CLI_RATE_LIMIT_EXIT_CODE" default:"5" validate:"gte=0,lte=255"`

	RPCURL   string        `envconfig:"SIGNAL_RPC_URL" default:"http://localhost:8080" validate:"required,url"`
	RPCRetry time.Duration `envconfig:"SIGNAL_RPC_RETRY" default:"5s" validate:"gt=0"`

	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
	Colours        bool   `envconfig:"SIGREG_COLOURS" default:"true"`
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none is
// given) without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
