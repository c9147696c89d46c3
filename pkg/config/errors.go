package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse settings file")
	ErrConfigNotFound  = errors.New("settings file not found")

	// Configuration validation errors.
	ErrRunnerEmpty           = errors.New("runner cannot be empty")
	ErrContainerRuntimeEmpty = errors.New("container_runtime cannot be empty")
	ErrConfigGlobEmpty       = errors.New("config_glob cannot be empty")
	ErrTempNameInvalid       = errors.New("temp_prefix and temp_suffix cannot contain a path separator")
)
