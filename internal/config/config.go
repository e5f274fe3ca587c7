// Package config handles LightWave client configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lightwave-leds/lightwave/internal/client"
	"github.com/lightwave-leds/lightwave/internal/protocol"
)

// Environment variables read by the client.
const (
	EnvBaseURL = "LIGHTWAVE_URL"
	EnvConfig  = "LIGHTWAVE_CONFIG"
)

// Config holds settings loaded from the config file.
type Config struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	LogFile string        `yaml:"log_file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: protocol.DefaultBaseURL,
		Timeout: client.DefaultTimeout,
	}
}

// DefaultPath returns ~/.lightwave/config.yaml for the current user.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lightwave", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields the defaults.
// Fields left empty in the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fileCfg.BaseURL != "" {
		cfg.BaseURL = fileCfg.BaseURL
	}
	if fileCfg.Timeout < 0 {
		return nil, fmt.Errorf("parse config %s: timeout must not be negative", path)
	}
	if fileCfg.Timeout > 0 {
		cfg.Timeout = fileCfg.Timeout
	}
	if fileCfg.LogFile != "" {
		cfg.LogFile = expandHome(fileCfg.LogFile)
	}
	return cfg, nil
}

// ConfigPath returns the config file to read: the explicit path if given,
// then $LIGHTWAVE_CONFIG, then ~/.lightwave/config.yaml.
func ConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	path, err := DefaultPath()
	if err != nil {
		return "", fmt.Errorf("locate config: %w", err)
	}
	return path, nil
}

// ResolveBaseURL picks the base URL by precedence: flag, then
// $LIGHTWAVE_URL, then the config file value, then the default.
func ResolveBaseURL(flag string, cfg *Config) (string, error) {
	raw := flag
	if raw == "" {
		raw = os.Getenv(EnvBaseURL)
	}
	if raw == "" && cfg != nil {
		raw = cfg.BaseURL
	}
	if raw == "" {
		raw = protocol.DefaultBaseURL
	}
	return NormalizeBaseURL(raw)
}

// NormalizeBaseURL checks that raw is an absolute http(s) URL and trims
// trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: missing host", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
