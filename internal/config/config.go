// Package config handles global configuration for issuedesk.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/issuedesk/config.yml.
type Config struct {
	GeminiAPIKey string `yaml:"gemini_api_key,omitempty"`
	Model        string `yaml:"model,omitempty"`
	Endpoint     string `yaml:"endpoint,omitempty"`
	DownloadsDir string `yaml:"downloads_dir,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "issuedesk"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"

	// EnvAPIKey overrides the configured Gemini credential.
	EnvAPIKey = "GEMINI_API_KEY"
)

// cache holds the loaded config for the process lifetime.
var cache *Config

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/issuedesk/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the global configuration. A missing file yields an empty
// config, not an error.
func Load() (*Config, error) {
	if cache != nil {
		return cache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DownloadsDir != "" {
		cfg.DownloadsDir = ExpandTilde(cfg.DownloadsDir)
	}

	cache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	cache = nil
}

// APIKey returns the Gemini credential: the environment wins over the
// config file.
func APIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	cfg, _ := Load()
	return cfg.GeminiAPIKey
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
