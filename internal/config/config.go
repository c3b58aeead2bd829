package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server struct {
		Host                     string `envconfig:"HOST" default:"localhost"`
		Port                     string `envconfig:"PORT" default:"8092"`
		ReadHeaderTimeoutSeconds int    `envconfig:"READ_HEADER_TIMEOUT_SECONDS" default:"20"`
		ShutdownTimeoutSeconds   int    `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"4"`
		LivenessEndpoint         string `envconfig:"LIVENESS_ENDPOINT" default:"/liveness"`
		LogLevel                 string `envconfig:"LOG_LEVEL" default:"info"`
	} `envconfig:"SERVER"`

	Hotel struct {
		Name string `envconfig:"NAME" default:"Florida Beach"`
	} `envconfig:"HOTEL"`
}

// Load reads an optional .env file and then the environment. A missing .env
// is not an error; variables already in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var conf Config

	if err := envconfig.Process("", &conf); err != nil {
		return nil, fmt.Errorf("process environment variables: %w", err)
	}

	return &conf, nil
}
