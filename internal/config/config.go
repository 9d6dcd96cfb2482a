// Package config handles the XDG configuration directory, config file and environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todoweb"

	// ConfigFile is the optional YAML config filename inside Dir.
	ConfigFile = "config.yaml"

	// DefaultAPIURL is the remote task collection used when nothing is configured.
	DefaultAPIURL = "http://localhost:8000/api/todos"

	// DefaultAddr is the listen address for the web front end.
	DefaultAddr = ":8080"

	// DefaultRequestTimeout bounds a single remote call.
	DefaultRequestTimeout = 10 * time.Second
)

// Environment variables that override the config file.
const (
	EnvAPIURL         = "TODOWEB_API_URL"
	EnvAddr           = "TODOWEB_ADDR"
	EnvLogLevel       = "TODOWEB_LOG_LEVEL"
	EnvLogFormat      = "TODOWEB_LOG_FORMAT"
	EnvRequestTimeout = "TODOWEB_REQUEST_TIMEOUT"
	EnvCORSOrigins    = "TODOWEB_CORS_ORIGINS"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the base URL of the remote task collection.
	// Fixed for the lifetime of the process.
	APIURL string

	// Addr is the listen address used by the serve command.
	Addr string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogJSON selects the JSON log handler instead of text.
	LogJSON bool

	// RequestTimeout bounds a single remote call. Zero disables it.
	RequestTimeout time.Duration

	// CORSOrigins lists origins allowed to call the JSON API. Empty allows all.
	CORSOrigins []string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig mirrors config.yaml.
type fileConfig struct {
	APIURL         string   `yaml:"api_url"`
	Addr           string   `yaml:"addr"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	RequestTimeout string   `yaml:"request_timeout"`
	CORSOrigins    []string `yaml:"cors_origins"`
}

// Defaults returns a Config with built-in defaults for the given directory.
func Defaults(dir string) *Config {
	return &Config{
		Dir:            dir,
		APIURL:         DefaultAPIURL,
		Addr:           DefaultAddr,
		LogLevel:       "warn",
		RequestTimeout: DefaultRequestTimeout,
	}
}

// Load builds a Config from defaults, an optional .env file in the working
// directory, Dir/config.yaml and environment overrides, in that order.
// If configDir is empty, uses XDG_CONFIG_HOME/todoweb or $HOME/.config/todoweb.
func Load(configDir string) (*Config, error) {
	_ = godotenv.Load()

	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := Defaults(dir)

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to the YAML config file.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasFile checks if the config file exists.
func (c *Config) HasFile() bool {
	_, err := os.Stat(c.FilePath())
	return err == nil
}

// Validate checks that the API URL is an absolute http(s) URL and the
// timeout is not negative.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api_url: %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api_url: %q: missing host", c.APIURL)
	}
	if c.RequestTimeout < 0 {
		return errors.New("invalid request_timeout: must not be negative")
	}
	return nil
}

func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.FilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.Addr != "" {
		c.Addr = fc.Addr
	}
	if fc.LogLevel != "" {
		c.LogLevel = strings.ToLower(fc.LogLevel)
	}
	if fc.LogFormat != "" {
		c.LogJSON = strings.EqualFold(fc.LogFormat, "json")
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout in %s: %w", ConfigFile, err)
		}
		c.RequestTimeout = d
	}
	if len(fc.CORSOrigins) > 0 {
		c.CORSOrigins = fc.CORSOrigins
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogJSON = strings.EqualFold(v, "json")
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRequestTimeout, err)
		}
		c.RequestTimeout = d
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		c.CORSOrigins = splitList(v)
	}
	return nil
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
