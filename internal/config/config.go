package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	AppName    = "Hello World"
	AppID      = "com.example.helloworld"
	AppVersion = "1.0.0"

	WindowTitle         = "Hello World - Iced"
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
)

// Config holds the settings read from the environment at startup.
type Config struct {
	LogLevel     zerolog.Level
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
}

func Default() Config {
	return Config{
		LogLevel:     zerolog.InfoLevel,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// FromEnv builds a Config using getenv, typically os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if raw := strings.TrimSpace(getenv("LOG_LEVEL")); raw != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
		cfg.LogLevel = level
	}

	if getenv("DEBUG") == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}

	if getenv("HELLO_JSON_LOGS") == "true" {
		cfg.JSONLogs = true
	}

	return cfg, nil
}
