package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "oreum.yaml"

// Storage backends for the settings key-value store.
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Config holds the server configuration.
type Config struct {
	Addr           string   `yaml:"addr"`
	Model          string   `yaml:"model"`
	Storage        string   `yaml:"storage"`
	DataDir        string   `yaml:"data_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// APIKey is the fallback credential used when none has been saved.
	// It is only read from the environment.
	APIKey string `yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	dir := "data"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".local", "share", "oreum")
	}
	return Config{
		Addr:           ":8080",
		Storage:        StorageJSON,
		DataDir:        dir,
		AllowedOrigins: []string{"*"},
	}
}

// loadConfig merges defaults, the YAML file at path, and environment
// variables read through getenv, in that order. A missing file is only an
// error when required is set.
func loadConfig(path string, required bool, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if v := getenv("OREUM_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("OREUM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := getenv("OREUM_STORAGE"); v != "" {
		cfg.Storage = v
	}
	if v := getenv("OREUM_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := getenv("OREUM_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	cfg.APIKey = strings.TrimSpace(getenv("GEMINI_API_KEY"))
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	cfg.DataDir = expandTilde(cfg.DataDir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	if c.DataDir == "" {
		return errors.New("config: data_dir is required")
	}
	switch c.Storage {
	case StorageJSON, StorageSQLite:
	default:
		return fmt.Errorf("config: unknown storage %q: must be %q or %q", c.Storage, StorageJSON, StorageSQLite)
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("config: allowed_origins must not be empty")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
