// Package base provides common functionality for wre-commit components.
package base

import (
	"github.com/lerenn/wre-commit/pkg/command"
	"github.com/lerenn/wre-commit/pkg/fs"
	"github.com/lerenn/wre-commit/pkg/logger"
)

// Program identity.
const (
	Name    = "wre-commit"
	Version = "1.0.5"
)

// Base provides common functionality for wre-commit components.
type Base struct {
	FS     fs.FS
	Runner command.Runner
	Logger logger.Logger
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	FS     fs.FS
	Runner command.Runner
	Logger logger.Logger
}

// NewBase creates a new Base instance.
func NewBase(params NewBaseParams) *Base {
	b := &Base{
		FS:     params.FS,
		Runner: params.Runner,
		Logger: params.Logger,
	}
	if b.Logger == nil {
		b.Logger = logger.NewNoopLogger()
	}
	return b
}

// Report prints a user-facing message.
func (b *Base) Report(msg string, args ...interface{}) {
	b.Logger.Logf(msg, args...)
}

// Debug logs a diagnostic message shown in debug mode only.
func (b *Base) Debug(msg string, args ...interface{}) {
	b.Logger.Debugf(msg, args...)
}
