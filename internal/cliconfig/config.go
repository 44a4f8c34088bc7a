// Package cliconfig loads and validates itemd's runtime configuration.
//
// Precedence, highest first: command-line flags, ITEMD_* environment
// variables, the TOML config file, built-in defaults. Precedence is
// enforced by tracking which flags were explicitly set.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bft-labs/itemd/internal/domain"
)

// DefaultListenAddr is the default HTTP listen address.
const DefaultListenAddr = ":8080"

// Config holds CLI configuration for itemd.
type Config struct {
	ListenAddr string

	// StoreDir selects the JSON file store when set; empty keeps items
	// in memory only.
	StoreDir string

	Workers        int
	TransformDelay time.Duration

	LogLevel    string
	WatchConfig bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     DefaultListenAddr,
		Workers:        8,
		TransformDelay: 100 * time.Millisecond,
		LogLevel:       "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen address is required", domain.ErrInvalidConfig)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive", domain.ErrInvalidConfig)
	}
	if c.TransformDelay < 0 {
		return fmt.Errorf("%w: transform delay must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (ITEMD_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("listen-addr", os.Getenv("ITEMD_LISTEN_ADDR"), &cfg.ListenAddr)
	s.setString("store-dir", os.Getenv("ITEMD_STORE_DIR"), &cfg.StoreDir)
	s.setString("log-level", os.Getenv("ITEMD_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("workers", os.Getenv("ITEMD_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setDuration("transform-delay", os.Getenv("ITEMD_TRANSFORM_DELAY"), &cfg.TransformDelay); err != nil {
		return err
	}

	s.setBoolFromString("watch-config", os.Getenv("ITEMD_WATCH_CONFIG"), &cfg.WatchConfig)

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return
	}
	*dst = b
}
