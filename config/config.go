package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		Metrics Metrics
		Swagger Swagger
	}

	HTTP struct {
		Port             string        `env:"HTTP_PORT,required"`
		UsePreforkMode   bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		CORSAllowOrigins string        `env:"HTTP_CORS_ALLOW_ORIGINS" envDefault:"*"`
		BodyLimit        int           `env:"HTTP_BODY_LIMIT" envDefault:"11534336"` // 10 MiB upload + multipart overhead
		ShutdownTimeout  time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"3s"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL,required"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}

	Metrics struct {
		Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
