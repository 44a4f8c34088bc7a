package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/itemd/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, DefaultListenAddr)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.TransformDelay != 100*time.Millisecond {
		t.Errorf("TransformDelay = %v, want 100ms", cfg.TransformDelay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty listen address",
			mutate:  func(c *Config) { c.ListenAddr = "" },
			wantErr: true,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Workers = -1 },
			wantErr: true,
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.TransformDelay = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero delay is allowed",
			mutate:  func(c *Config) { c.TransformDelay = 0 },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() returned nil, want error")
				}
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() returned error: %v", err)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("ITEMD_LISTEN_ADDR", ":9090")
	t.Setenv("ITEMD_STORE_DIR", "/var/lib/itemd")
	t.Setenv("ITEMD_WORKERS", "16")
	t.Setenv("ITEMD_TRANSFORM_DELAY", "250ms")
	t.Setenv("ITEMD_LOG_LEVEL", "debug")
	t.Setenv("ITEMD_WATCH_CONFIG", "true")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig returned error: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if cfg.StoreDir != "/var/lib/itemd" {
		t.Errorf("StoreDir = %q, want /var/lib/itemd", cfg.StoreDir)
	}
	if cfg.Workers != 16 {
		t.Errorf("Workers = %d, want 16", cfg.Workers)
	}
	if cfg.TransformDelay != 250*time.Millisecond {
		t.Errorf("TransformDelay = %v, want 250ms", cfg.TransformDelay)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.WatchConfig {
		t.Error("WatchConfig = false, want true")
	}
}

func TestApplyEnvConfig_RespectsChangedFlags(t *testing.T) {
	t.Setenv("ITEMD_LISTEN_ADDR", ":9090")
	t.Setenv("ITEMD_WORKERS", "16")

	cfg := DefaultConfig()
	cfg.ListenAddr = ":7070"
	changed := map[string]bool{"listen-addr": true}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig returned error: %v", err)
	}

	if cfg.ListenAddr != ":7070" {
		t.Errorf("ListenAddr = %q, want flag value :7070", cfg.ListenAddr)
	}
	if cfg.Workers != 16 {
		t.Errorf("Workers = %d, want env value 16", cfg.Workers)
	}
}

func TestApplyEnvConfig_InvalidDuration(t *testing.T) {
	t.Setenv("ITEMD_TRANSFORM_DELAY", "not-a-duration")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Error("ApplyEnvConfig() expected error but got nil")
	}
}
