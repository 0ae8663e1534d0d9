package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures dexter's runtime settings.
type Config struct {
	APIBase           string
	RequestTimeout    time.Duration
	DefaultGeneration int
	MaxInFlight       int
	LogFile           string
	LogLevel          string
}

const (
	defaultConfigPath     = "~/.config/dexter/config.toml"
	defaultAPIBase        = "https://pokeapi.co/api/v2"
	defaultRequestTimeout = 10 * time.Second
	defaultGeneration     = 1
	defaultLogFile        = "~/.local/state/dexter/dexter.log"
	defaultLogLevel       = "info"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		APIBase:           defaultAPIBase,
		RequestTimeout:    defaultRequestTimeout,
		DefaultGeneration: defaultGeneration,
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
	}
}

// Load locates and parses the dexter config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase           string  `toml:"api_base"`
		RequestTimeout    string  `toml:"request_timeout"`
		DefaultGeneration int     `toml:"default_generation"`
		MaxInFlight       int     `toml:"max_in_flight"`
		LogFile           *string `toml:"log_file"`
		LogLevel          string  `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}

	if timeout := strings.TrimSpace(raw.RequestTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("request_timeout must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}

	if raw.DefaultGeneration != 0 {
		cfg.DefaultGeneration = raw.DefaultGeneration
	}

	if raw.MaxInFlight < 0 {
		return Config{}, fmt.Errorf("max_in_flight must be >= 0, got %d", raw.MaxInFlight)
	}
	cfg.MaxInFlight = raw.MaxInFlight

	// An explicitly empty log_file disables logging.
	if raw.LogFile != nil {
		if trimmed := strings.TrimSpace(*raw.LogFile); trimmed == "" {
			cfg.LogFile = ""
		} else {
			cfg.LogFile = mustExpand(trimmed)
		}
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
