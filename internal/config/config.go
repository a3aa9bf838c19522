package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/masa/internal/files"
)

const (
	// DefaultTick drives the companion animation and timer refresh.
	DefaultTick = 200 * time.Millisecond
	// DefaultStaleAfter is the age beyond which a leftover open session is
	// considered abandoned.
	DefaultStaleAfter = 24 * time.Hour
)

// Config holds user preferences read from config.yaml. Every field is
// optional.
type Config struct {
	DataFile   string        `yaml:"data_file"`
	LogFile    string        `yaml:"log_file"`
	Tick       time.Duration `yaml:"tick"`
	StaleAfter time.Duration `yaml:"stale_after"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataFile:   files.DefaultDataFile,
		Tick:       DefaultTick,
		StaleAfter: DefaultStaleAfter,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(fromFile)

	if cfg.Tick < 0 || cfg.StaleAfter < 0 {
		return cfg, fmt.Errorf("parse config %s: durations must not be negative", path)
	}
	return cfg, nil
}

func (c *Config) merge(other Config) {
	if other.DataFile != "" {
		c.DataFile = other.DataFile
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.Tick != 0 {
		c.Tick = other.Tick
	}
	if other.StaleAfter != 0 {
		c.StaleAfter = other.StaleAfter
	}
}
