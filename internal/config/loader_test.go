package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWritesAndUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %s", resolved)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	want := Default()
	if cfg.Addr != want.Addr || cfg.ShutdownTimeout != want.ShutdownTimeout {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9999\"\nread_header_timeout: 2s\nrate_limit: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("addr not read from file: %s", cfg.Addr)
	}
	if cfg.ReadHeaderTimeout != 2*time.Second {
		t.Fatalf("read_header_timeout not read: %v", cfg.ReadHeaderTimeout)
	}
	if cfg.RateLimit != 7 {
		t.Fatalf("rate_limit not read: %d", cfg.RateLimit)
	}
	// Unset keys keep their defaults.
	if cfg.CORSOrigin != Default().CORSOrigin {
		t.Fatalf("unexpected cors_origin: %s", cfg.CORSOrigin)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9999\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("NOSKILLS_ADDR", ":7777")

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7777" {
		t.Fatalf("env override not applied: %s", cfg.Addr)
	}
}
