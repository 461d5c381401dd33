package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"herald/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/herald"
	configFileName = "config.yaml"

	// ConfigPathEnvVar overrides the config directory when set.
	ConfigPathEnvVar = "HERALD_CONFIG"
)

// GetDefaultConfigPathOrPanic returns the config directory: the
// HERALD_CONFIG environment variable when set, ~/.config/herald otherwise.
func GetDefaultConfigPathOrPanic() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}
	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the specified directory. The directory
// should contain config.yaml; a missing file yields the defaults untouched.
func LoadConfig(configPath string) (HeraldConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return resolvePaths(config, configPath), nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return HeraldConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		// config malformed
		return HeraldConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return resolvePaths(config, configPath), nil
}

// resolvePaths anchors relative file settings at the config directory.
func resolvePaths(config HeraldConfig, configPath string) HeraldConfig {
	if config.Definitions != "" && !filepath.IsAbs(config.Definitions) {
		config.Definitions = filepath.Join(configPath, config.Definitions)
	}
	if config.Shell.History != "" && !filepath.IsAbs(config.Shell.History) {
		config.Shell.History = filepath.Join(configPath, config.Shell.History)
	}
	return config
}
