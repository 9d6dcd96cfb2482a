package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"todoweb/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvAPIURL,
		config.EnvAddr,
		config.EnvLogLevel,
		config.EnvLogFormat,
		config.EnvRequestTimeout,
		config.EnvCORSOrigins,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.APIURL != config.DefaultAPIURL {
		t.Errorf("expected api url %q, got %q", config.DefaultAPIURL, cfg.APIURL)
	}
	if cfg.Addr != config.DefaultAddr {
		t.Errorf("expected addr %q, got %q", config.DefaultAddr, cfg.Addr)
	}
	if cfg.RequestTimeout != config.DefaultRequestTimeout {
		t.Errorf("expected timeout %v, got %v", config.DefaultRequestTimeout, cfg.RequestTimeout)
	}
	if cfg.LogJSON {
		t.Error("expected text logs by default")
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	content := "api_url: https://tasks.example.com/api/todos\naddr: 127.0.0.1:9000\nlog_level: DEBUG\nlog_format: json\nrequest_timeout: 3s\n"
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "https://tasks.example.com/api/todos" {
		t.Errorf("unexpected api url %q", cfg.APIURL)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if !cfg.LogJSON {
		t.Error("expected json logs")
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	content := "api_url: https://file.example.com/api/todos\n"
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(config.EnvAPIURL, "http://env.example.com/api/todos")
	t.Setenv(config.EnvRequestTimeout, "250ms")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "http://env.example.com/api/todos" {
		t.Errorf("expected env api url, got %q", cfg.APIURL)
	}
	if cfg.RequestTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	content := "cors_origins:\n  - https://a.example.com\n"
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://a.example.com" {
		t.Errorf("unexpected origins from file: %v", cfg.CORSOrigins)
	}

	t.Setenv(config.EnvCORSOrigins, " https://b.example.com, ,https://c.example.com ")
	cfg, err = config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://b.example.com", "https://c.example.com"}
	if len(cfg.CORSOrigins) != len(want) || cfg.CORSOrigins[0] != want[0] || cfg.CORSOrigins[1] != want[1] {
		t.Errorf("expected %v, got %v", want, cfg.CORSOrigins)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("api_url: [unterminated\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := config.Load(dir); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://localhost:8000/api/todos", false},
		{"https", "https://example.com/todos", false},
		{"no scheme", "localhost:8000/api/todos", true},
		{"ftp", "ftp://example.com/todos", true},
		{"no host", "http:///api/todos", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults(t.TempDir())
			cfg.APIURL = tt.url
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := config.DefaultConfigDir(); got != filepath.Join("/tmp/xdg", config.AppName) {
		t.Errorf("unexpected config dir %q", got)
	}
}
