package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/oxbel/dirkit/internal/constants"
	"github.com/oxbel/dirkit/internal/utils"
)

// Config holds the persistent defaults for the dirkit CLI.
// Every value can be overridden per invocation with a command flag.
type Config struct {
	// StubName is the filename created in each subdirectory by `dirkit stub`
	StubName string `toml:"stub-name"`

	// SkipFirst controls whether the stub command drops the first directory
	// of the listing before creating stubs
	SkipFirst bool `toml:"skip-first"`

	// DefaultExtension is the extension filter `dirkit print` applies when
	// the user supplies none. Empty means no filter.
	DefaultExtension string `toml:"default-extension,omitempty"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		StubName:  constants.DefaultStubName,
		SkipFirst: true,
	}
}

// GetConfigFile returns the path to the config.toml file
func GetConfigFile() (string, error) {
	configDir, err := utils.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, constants.ConfigFile), nil
}

// Exists checks whether a config file has been written
func Exists() bool {
	configFile, err := GetConfigFile()
	if err != nil {
		return false
	}
	return utils.FileExists(configFile)
}

// Load loads the configuration from the config file.
// Missing file is not an error; defaults are returned instead.
func Load() (*Config, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to get config file path: %w", err)
	}

	cfg := Default()
	if !utils.FileExists(configFile) {
		return cfg, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file, creating the config
// directory if needed
func Save(cfg *Config) error {
	configFile, err := GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	if err := utils.EnsureDir(filepath.Dir(configFile)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
