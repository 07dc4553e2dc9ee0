package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dualpane/internal/logger"
)

// Config holds the persisted dualpane settings
type Config struct {
	LeftDir    string `json:"left_dir"`
	RightDir   string `json:"right_dir"`
	ShowHidden bool   `json:"show_hidden"`
}

// Default returns the out-of-the-box config: left pane on the working
// directory, right pane on the user's home.
func Default() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = cwd
	}
	return &Config{
		LeftDir:    cwd,
		RightDir:   homeDir,
		ShowHidden: true,
	}
}

// Load reads config from ~/.config/dualpane/config.json, falling back to
// defaults when the file is missing or malformed. Pane directories that no
// longer exist are reset so the browser always starts somewhere valid.
func Load() *Config {
	defaults := Default()

	path, err := Path()
	if err != nil {
		logger.Error("Failed to locate config: %v", err)
		return defaults
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if err := Save(defaults); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return defaults
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", path, err)
		return defaults
	}

	if cfg.LeftDir == "" || !isDir(cfg.LeftDir) {
		cfg.LeftDir = defaults.LeftDir
	}
	if cfg.RightDir == "" || !isDir(cfg.RightDir) {
		cfg.RightDir = defaults.RightDir
	}

	return cfg
}

// Save writes config to ~/.config/dualpane/config.json
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("Failed to create config directory: %v", err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", path, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// Path returns the location of the config file
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "dualpane", "config.json"), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
