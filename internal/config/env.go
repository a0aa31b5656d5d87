package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of the environment variables read by LoadEnv.
const EnvPrefix = "transition"

// Env holds process settings taken from the environment.
type Env struct {
	// FFmpeg is the ffmpeg executable (TRANSITION_FFMPEG).
	FFmpeg string `envconfig:"FFMPEG" default:"ffmpeg"`

	// Workers is the number of render workers; 0 uses GOMAXPROCS
	// (TRANSITION_WORKERS).
	Workers int `envconfig:"WORKERS"`

	// LogLevel is debug, info, warn or error (TRANSITION_LOG_LEVEL).
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// LogFile, when set, also writes logs to a rotated file
	// (TRANSITION_LOG_FILE).
	LogFile string `envconfig:"LOG_FILE"`
}

// LoadEnv reads the TRANSITION_* variables.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("config: environment: %w", err)
	}
	return env, nil
}
