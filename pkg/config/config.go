// Package config provides configuration loading and management for the
// kretzinfo tool. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the tool configuration loaded from YAML
type Config struct {
	// Display parameters control which report sections are printed
	Display struct {
		// ShowPatientInfo determines whether patient and study fields are
		// printed (disable for anonymized output)
		ShowPatientInfo bool `yaml:"showPatientInfo"`

		// ShowSystemInfo determines whether system and probe fields are printed
		ShowSystemInfo bool `yaml:"showSystemInfo"`

		// ShowStats determines whether voxel intensity statistics are computed
		// and printed
		ShowStats bool `yaml:"showStats"`

		// Verbose controls the level of output detail
		Verbose bool `yaml:"verbose"`
	} `yaml:"display"`

	// Preview parameters control the raw sample preview
	Preview struct {
		// Enabled determines whether a preview of decoded samples is printed
		Enabled bool `yaml:"enabled"`

		// MaxValues is the number of leading samples to print when the
		// preview is enabled
		MaxValues int `yaml:"maxValues"`
	} `yaml:"preview"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default display parameters
	cfg.Display.ShowPatientInfo = true
	cfg.Display.ShowSystemInfo = true
	cfg.Display.ShowStats = false
	cfg.Display.Verbose = true

	// Set default preview parameters
	cfg.Preview.Enabled = false
	cfg.Preview.MaxValues = 16

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
