// Package config resolves where and how hydromind keeps its data.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Dir      string `env:"HYDROMIND_DIR"`
	Store    string `env:"HYDROMIND_STORE,default=json"`
	LogLevel string `env:"HYDROMIND_LOG_LEVEL,default=warn"`
}

// DefaultDir returns the data directory used when HYDROMIND_DIR is unset.
func DefaultDir(homeDir string) string {
	return filepath.Join(homeDir, ".hydromind")
}

// EnvFilePath returns the optional env file read before the environment.
func EnvFilePath(homeDir string) string {
	return filepath.Join(DefaultDir(homeDir), "hydromind.env")
}

// Load reads the optional env file, then decodes the environment. Variables
// already set in the environment win over the file.
func Load(homeDir string) (Config, error) {
	envFile := EnvFilePath(homeDir)
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	if cfg.Dir == "" {
		cfg.Dir = DefaultDir(homeDir)
	}
	if cfg.Store == "" {
		cfg.Store = StoreJSON
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	cfg.Store = strings.ToLower(cfg.Store)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the store kind and log level.
func (c Config) Validate() error {
	switch c.Store {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("invalid store %q (expected %s or %s)", c.Store, StoreJSON, StoreSQLite)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// Level returns the configured log level, falling back to warn.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
