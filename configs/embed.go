// Package configs provides embedded configuration files for the wre-commit application.
package configs

import _ "embed"

// DefaultConfigYAML contains the default settings file content.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
