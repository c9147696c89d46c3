package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides settings loading with an embedded settings path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages settings with an embedded settings path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified settings path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// DefaultConfigPath returns the settings path: override when set, else
// wre-commit/config.yaml under the user configuration directory.
func DefaultConfigPath(override string) string {
	if override != "" {
		return override
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to current directory if config directory cannot be determined
		configDir = "."
	}
	return filepath.Join(configDir, "wre-commit", "config.yaml")
}

// GetConfig loads settings from the settings path over the defaults.
func (c *realManager) GetConfig() (Config, error) {
	data, err := os.ReadFile(c.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	config, err := parse(data, c.DefaultConfig())
	if err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid settings in %s: %w", c.configPath, err)
	}

	return config, nil
}

// GetConfigWithFallback loads settings, falling back to the defaults when
// the settings file does not exist. Any other failure is returned.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotFound) {
		return c.DefaultConfig(), nil
	}
	return config, err
}

// GetConfigPath returns the embedded settings path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default settings.
func (c *realManager) DefaultConfig() Config {
	return Default()
}
