package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	Environment string `env:"CALC_ENV" envDefault:"development"`
	// sqlite или memory
	Store string `env:"CALC_STORE" envDefault:"sqlite"`
	// Путь к файлу SQLite
	DBPath     string `env:"CALC_DB_PATH" envDefault:"calculator.db"`
	HistoryKey string `env:"CALC_HISTORY_KEY" envDefault:"calculatorHistory"`
	// Сколько вычислений хранить в истории
	HistoryLimit int    `env:"CALC_HISTORY_LIMIT" envDefault:"50"`
	GRPCAddr     string `env:"CALC_GRPC_ADDR" envDefault:"localhost:8081"`
	HTTPAddr     string `env:"CALC_HTTP_ADDR" envDefault:":8080"`
	// Секретный ключ для JWT, пустой секрет отключает авторизацию
	JWTSecret string        `env:"CALC_JWT_SECRET"`
	TokenTTL  time.Duration `env:"CALC_TOKEN_TTL" envDefault:"10m"`
	LogFile   string        `env:"CALC_LOG_FILE"`
}

// LoadConfig reads the given .env files, when they exist, and then the
// process environment. With no files it tries ".env".
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HistoryLimit < 1 {
		return fmt.Errorf("CALC_HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.Store != StoreSQLite && c.Store != StoreMemory {
		return fmt.Errorf("CALC_STORE must be %q or %q, got %q", StoreSQLite, StoreMemory, c.Store)
	}
	if c.HistoryKey == "" {
		return errors.New("CALC_HISTORY_KEY is empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("CALC_TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}

// AuthEnabled reports whether requests must carry a token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// NewLogger builds a production logger when CALC_ENV is "production" and a
// development logger otherwise. CALC_LOG_FILE redirects output to a file.
func NewLogger(c *Config) (*zap.Logger, error) {
	var zc zap.Config
	if c.Environment == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	if c.LogFile != "" {
		zc.OutputPaths = []string{c.LogFile}
		zc.ErrorOutputPaths = []string{c.LogFile}
	}
	return zc.Build()
}
