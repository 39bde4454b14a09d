package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config search when set. Useful for CI and
// scripted tilegen runs where flags are awkward.
const EnvConfigPath = "TERRACLIP_CONFIG"

// Load loads configuration with priority: defaults < file < flags.
// The file is taken from -config, then $TERRACLIP_CONFIG, then the
// first match in the search locations.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// CLI flags win over everything
	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile returns the first config file present in the search
// order: the working directory (tool-specific name first), then the OS
// config directory.
func findConfigFile() string {
	candidates := []string{
		"terraclip.yaml",
		"config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "TerraClip")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "TerraClip")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "terraclip")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "terraclip")
	}
}

// loadFromFile merges a YAML file over the current config values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
