package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	cron_config "github.com/customeros/socialstack/internal/cron/config"
	"github.com/customeros/socialstack/internal/logger"
	"github.com/customeros/socialstack/internal/tracing"
)

type Config struct {
	AppConfig *AppConfig
	Logger    *logger.Config
	Tracing   *tracing.JaegerConfig
	Cron      *cron_config.Config
}

func InitConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	return ParseConfig()
}

// ParseConfig reads the configuration from the environment only.
func ParseConfig() (*Config, error) {
	config := &Config{
		AppConfig: &AppConfig{},
		Logger:    &logger.Config{},
		Tracing:   &tracing.JaegerConfig{},
		Cron:      &cron_config.Config{},
	}

	if err := env.Parse(config); err != nil {
		return nil, errors.Wrap(err, "error loading socialstack config")
	}

	return config, nil
}
