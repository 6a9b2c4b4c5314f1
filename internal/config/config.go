package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/opencalc/pkg/calculator"
	"github.com/OpenTraceLab/opencalc/pkg/eval"
)

// AppConfig stores persistent application settings
type AppConfig struct {
	HistoryDepth   int  `json:"history_depth"`
	DarkMode       bool `json:"dark_mode"`
	StrictNumbers  bool `json:"strict_numbers"`
	AllowNonFinite bool `json:"allow_non_finite"`
}

// Default returns the settings used when no config file exists.
func Default() *AppConfig {
	return &AppConfig{
		HistoryDepth: calculator.DefaultHistoryDepth,
	}
}

// Validate checks the settings for values the app cannot use.
func (c *AppConfig) Validate() error {
	if c.HistoryDepth < 1 || c.HistoryDepth > 1000 {
		return fmt.Errorf("history_depth must be between 1 and 1000, got %d", c.HistoryDepth)
	}
	return nil
}

// EvalOptions converts the evaluator policy settings.
func (c *AppConfig) EvalOptions() eval.Options {
	return eval.Options{
		StrictNumbers:  c.StrictNumbers,
		AllowNonFinite: c.AllowNonFinite,
	}
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	// Windows: use %APPDATA%\OpenCalc
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "OpenCalc", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Linux/macOS: use ~/.config/opencalc
	return filepath.Join(homeDir, ".config", "opencalc", "config.json"), nil
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Save writes the configuration to path, creating its directory.
func Save(path string, config *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
