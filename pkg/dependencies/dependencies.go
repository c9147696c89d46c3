// Package dependencies provides a centralized dependency container for wre-commit.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/wre-commit/pkg/command"
	"github.com/lerenn/wre-commit/pkg/config"
	"github.com/lerenn/wre-commit/pkg/dispatch"
	"github.com/lerenn/wre-commit/pkg/fs"
	"github.com/lerenn/wre-commit/pkg/git"
	"github.com/lerenn/wre-commit/pkg/hooks"
	"github.com/lerenn/wre-commit/pkg/logger"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrRunnerMissing      = errors.New("runner dependency is required but not set")
	ErrGitMissing         = errors.New("git dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
	ErrDispatcherMissing  = errors.New("dispatcher dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	Runner      command.Runner
	Git         git.Git
	Config      config.Manager
	Logger      logger.Logger
	HookManager hooks.Manager
	Dispatcher  dispatch.Dispatcher
}

// New creates a new Dependencies instance with defaults for the leaf
// dependencies.
func New() *Dependencies {
	fsys := fs.NewFS()
	runner := command.NewRunner(command.NewRunnerParams{FS: fsys})

	return &Dependencies{
		FS:     fsys,
		Runner: runner,
		Git:    git.NewGit(runner),
		Logger: logger.NewNoopLogger(),
		// Config, HookManager and Dispatcher depend on the invocation and
		// are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithRunner sets the process runner and returns the instance for chaining.
func (d *Dependencies) WithRunner(runner command.Runner) *Dependencies {
	d.Runner = runner
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the settings manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.Manager) *Dependencies {
	d.HookManager = hm
	return d
}

// WithDispatcher sets the dispatcher and returns the instance for chaining.
func (d *Dependencies) WithDispatcher(dispatcher dispatch.Dispatcher) *Dependencies {
	d.Dispatcher = dispatcher
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Runner, ErrRunnerMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.HookManager, ErrHookManagerMissing},
		{d.Dispatcher, ErrDispatcherMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
