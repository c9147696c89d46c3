// Package config provides the settings of the wre-commit application.
//
// Settings only tune how wre-commit drives pre-commit; the pre-commit
// configuration files themselves are never parsed here.
package config

import (
	"fmt"
	"strings"

	"github.com/lerenn/wre-commit/configs"
	"gopkg.in/yaml.v3"
)

// Config represents the application settings.
type Config struct {
	// Runner is the executable dispatched once per configuration document.
	Runner string `yaml:"runner"`
	// ContainerRuntime runs containerized documents.
	ContainerRuntime string `yaml:"container_runtime"`
	// ConfigGlob matches configuration files when no --config option is given.
	ConfigGlob string `yaml:"config_glob"`
	// TempPrefix and TempSuffix name the files holding split documents.
	TempPrefix string `yaml:"temp_prefix"`
	TempSuffix string `yaml:"temp_suffix"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.Runner == "" {
		return ErrRunnerEmpty
	}
	if c.ContainerRuntime == "" {
		return ErrContainerRuntimeEmpty
	}
	if c.ConfigGlob == "" {
		return ErrConfigGlobEmpty
	}
	if strings.ContainsAny(c.TempPrefix+c.TempSuffix, `/\`) {
		return ErrTempNameInvalid
	}
	return nil
}

// parse decodes data over base, so keys missing from data keep base values.
func parse(data []byte, base Config) (Config, error) {
	config := base
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return config, nil
}

// Default returns the settings embedded in the binary.
func Default() Config {
	config, err := parse(configs.DefaultConfigYAML, Config{})
	if err != nil {
		panic(fmt.Sprintf("embedded default settings are invalid: %v", err))
	}
	return config
}
