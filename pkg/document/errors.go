// Package document splits multi-document YAML configuration files.
package document

import (
	"errors"
	"fmt"
)

// Error definitions for document package.
var (
	// ErrConfig is matched by every *ConfigError.
	ErrConfig = errors.New("config error")
)

// ConfigError is returned when a configuration file cannot be read.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Config file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConfig) match any *ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
