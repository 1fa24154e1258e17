// Package config loads the dashboard settings from the environment and optional .env files
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	decomposer "github.com/aouyang1/go-decomposer"
	"github.com/aouyang1/go-decomposer/decompose"
	"github.com/joho/godotenv"
)

const (
	EnvAddr            = "DECOMPOSER_ADDR"
	EnvShutdownTimeout = "DECOMPOSER_SHUTDOWN_TIMEOUT"
	EnvLogLevel        = "DECOMPOSER_LOG_LEVEL"
	EnvMethod          = "DECOMPOSER_METHOD"
	EnvSeed            = "DECOMPOSER_SEED"
	EnvLength          = "DECOMPOSER_LENGTH"
	EnvTheme           = "DECOMPOSER_THEME"
	EnvAssetsHost      = "DECOMPOSER_ASSETS_HOST"

	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 5 * time.Second
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the server settings and the pipeline options
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	LogLevel        slog.Level
	Options         *decomposer.Options
}

// Load reads the given .env files, falling back to ".env" in the working directory when
// none are named. A missing default file is not an error. Variables already set in the
// process environment take precedence over the files.
func Load(envFiles ...string) (*Config, error) {
	fileVals := map[string]string{}
	if len(envFiles) == 0 {
		vals, err := godotenv.Read()
		if err != nil {
			slog.Debug("no .env file loaded, using environment variables", "error", err.Error())
		} else {
			fileVals = vals
		}
	} else {
		vals, err := godotenv.Read(envFiles...)
		if err != nil {
			return nil, fmt.Errorf("unable to read env files %v, %w", envFiles, err)
		}
		fileVals = vals
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVals[key]
	}
	return FromLookup(lookup)
}

// FromLookup builds a Config from a key lookup function. Empty values keep the defaults.
func FromLookup(lookup func(string) string) (*Config, error) {
	cfg := &Config{
		Addr:            DefaultAddr,
		ShutdownTimeout: DefaultShutdownTimeout,
		LogLevel:        slog.LevelInfo,
		Options:         decomposer.NewDefaultOptions(),
	}

	if v := lookup(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := lookup(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q, %w", EnvShutdownTimeout, v, ErrInvalidValue)
		}
		cfg.ShutdownTimeout = d
	}
	if v := lookup(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%s=%q, %w", EnvLogLevel, v, ErrInvalidValue)
		}
	}
	if v := lookup(EnvMethod); v != "" {
		m, err := decompose.ParseMethod(v)
		if err != nil {
			return nil, fmt.Errorf("%s, %w", EnvMethod, err)
		}
		cfg.Options.DecomposeOptions.Method = m
	}
	if v := lookup(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s=%q, %w", EnvSeed, v, ErrInvalidValue)
		}
		cfg.Options.SeriesOptions.Seed = seed
	}
	if v := lookup(EnvLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s=%q, %w", EnvLength, v, ErrInvalidValue)
		}
		cfg.Options.SeriesOptions.Length = n
	}
	if v := lookup(EnvTheme); v != "" {
		cfg.Options.PlotOptions.Theme = v
	}
	if v := lookup(EnvAssetsHost); v != "" {
		cfg.Options.PlotOptions.AssetsHost = v
	}
	if err := cfg.Options.Validate(); err != nil {
		return nil, fmt.Errorf("%w, %w", ErrInvalidValue, err)
	}
	return cfg, nil
}
