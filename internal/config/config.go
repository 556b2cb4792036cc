// Package config loads server configuration from a YAML file and the
// environment and builds the process logger.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ecotracker/internal/domain"
)

// Config is the full server configuration.
type Config struct {
	Addr    string        `yaml:"addr"`
	WebDir  string        `yaml:"web_dir"`
	Log     LogConfig     `yaml:"log"`
	Session SessionConfig `yaml:"session"`
	Share   ShareConfig   `yaml:"share"`
	Goals   domain.Goals  `yaml:"goals"`
}

// LogConfig selects the log level and output format ("console" or "json").
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SessionConfig controls session lifetime and the reaper schedule.
type SessionConfig struct {
	TTL          time.Duration `yaml:"ttl"`
	ReapSchedule string        `yaml:"reap_schedule"`
}

// ShareConfig rate-limits sharing progress: one share per Every per session,
// with bursts of up to Burst.
type ShareConfig struct {
	Every time.Duration `yaml:"every"`
	Burst int           `yaml:"burst"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:   ":8080",
		WebDir: "web",
		Log:    LogConfig{Level: "info", Format: "console"},
		Session: SessionConfig{
			TTL:          24 * time.Hour,
			ReapSchedule: "@every 10m",
		},
		Share: ShareConfig{Every: 10 * time.Second, Burst: 3},
		Goals: domain.DefaultGoals(),
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ADDR, WEB_DIR, LOG_LEVEL and LOG_FORMAT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set("ADDR", &c.Addr)
	set("WEB_DIR", &c.WebDir)
	set("LOG_LEVEL", &c.Log.Level)
	set("LOG_FORMAT", &c.Log.Format)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr is required")
	case c.Log.Format != "console" && c.Log.Format != "json":
		return fmt.Errorf("log.format must be \"console\" or \"json\", got %q", c.Log.Format)
	case c.Session.TTL <= 0:
		return fmt.Errorf("session.ttl must be > 0, got %s", c.Session.TTL)
	case c.Session.ReapSchedule == "":
		return errors.New("session.reap_schedule is required")
	case c.Share.Every <= 0:
		return fmt.Errorf("share.every must be > 0, got %s", c.Share.Every)
	case c.Share.Burst < 1:
		return fmt.Errorf("share.burst must be >= 1, got %d", c.Share.Burst)
	case c.Goals.WeeklyRecyclingKg < 0 || c.Goals.WasteReductionKg < 0:
		return errors.New("goals must not be negative")
	}
	return nil
}
