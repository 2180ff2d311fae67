package server

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/relight-mcp/internal/relight"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel = "RELIGHT_MCP_LOG_LEVEL"
	EnvGamma    = "RELIGHT_MCP_GAMMA"
	EnvLevel    = "RELIGHT_MCP_LEVEL"
)

// Config holds server settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel slog.Level

	// Gamma and Level are used when a render request omits them.
	Gamma float64
	Level float64
}

// DefaultConfig returns the settings used when no environment overrides are set.
func DefaultConfig() Config {
	return Config{
		LogLevel: slog.LevelInfo,
		Gamma:    relight.DefaultGamma,
		Level:    relight.DefaultLevel,
	}
}

// LoadConfig builds a Config from the environment on top of DefaultConfig.
func LoadConfig(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := DefaultConfig()

	if v := getenv(EnvLogLevel); v != "" {
		switch strings.ToLower(v) {
		case "debug":
			cfg.LogLevel = slog.LevelDebug
		case "info":
			cfg.LogLevel = slog.LevelInfo
		case "warn", "warning":
			cfg.LogLevel = slog.LevelWarn
		case "error":
			cfg.LogLevel = slog.LevelError
		default:
			return cfg, fmt.Errorf("%s: unknown level %q", EnvLogLevel, v)
		}
	}

	var err error
	if cfg.Gamma, err = floatEnv(getenv, EnvGamma, cfg.Gamma); err != nil {
		return cfg, err
	}
	if cfg.Level, err = floatEnv(getenv, EnvLevel, cfg.Level); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func floatEnv(getenv func(string) string, key string, def float64) (float64, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
