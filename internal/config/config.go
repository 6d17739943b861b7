package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendHTTP   = "http"
	BackendOpenAI = "openai"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	Backend          string        `env:"CONVERTER_BACKEND" envDefault:"http"`
	ConverterURL     string        `env:"CONVERTER_URL"`
	ConverterTimeout time.Duration `env:"CONVERTER_TIMEOUT" envDefault:"30s"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	DatabaseURL string `env:"DATABASE_URL"`

	TelegramToken   string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramAdminID int64  `env:"TELEGRAM_ADMIN_CHAT_ID"`

	AdminToken   string        `env:"ADMIN_TOKEN"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	RateLimit    int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	HistoryLimit int           `env:"HISTORY_MEMORY_LIMIT" envDefault:"1000"`
}

// Load читает .env (если есть) и переменные окружения
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendHTTP:
		if c.ConverterURL == "" {
			return errors.New("CONVERTER_URL is not set")
		}
	case BackendOpenAI:
		if c.OpenAIKey == "" {
			return errors.New("OPENAI_API_KEY is not set")
		}
	default:
		return fmt.Errorf("unknown CONVERTER_BACKEND %q", c.Backend)
	}

	if c.TelegramToken != "" && c.TelegramAdminID == 0 {
		return errors.New("TELEGRAM_ADMIN_CHAT_ID is required with TELEGRAM_BOT_TOKEN")
	}
	if c.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}
