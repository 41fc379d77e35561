package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/carlostmj/uway-auth/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/uway-auth"
	configFileName = "config.yaml"
)

// osUserHomeDir is swapped out in tests.
var osUserHomeDir = os.UserHomeDir

// DefaultConfigPath returns ~/.config/uway-auth/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// LoadConfig reads the YAML file at configFilePath over the defaults.
// A missing file is not an error: the defaults are returned. An empty path
// selects DefaultConfigPath.
func LoadConfig(configFilePath string) (Config, error) {
	config := GetDefaultConfig()

	if configFilePath == "" {
		var err error
		configFilePath, err = DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config file found at %s, using defaults", configFilePath)
			return config, nil
		}
		return Config{}, fmt.Errorf("error reading config: %w", ConfigError{
			FilePath: configFilePath,
			Message:  err.Error(),
		})
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config: %w", ConfigError{
			FilePath:   configFilePath,
			Message:    err.Error(),
			Suggestion: "check the YAML syntax; durations are written like 15s or 1m",
		})
	}

	logging.Debug("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}
