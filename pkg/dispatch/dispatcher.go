// Package dispatch runs the pre-commit runner once per configuration document.
package dispatch

import (
	"github.com/lerenn/wre-commit/internal/base"
	"github.com/lerenn/wre-commit/pkg/command"
	"github.com/lerenn/wre-commit/pkg/config"
	"github.com/lerenn/wre-commit/pkg/fs"
	"github.com/lerenn/wre-commit/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=dispatcher.go -destination=mocks/dispatcher.gen.go -package=mocks

// Outcome is the result of a single runner invocation.
type Outcome struct {
	ExitCode int
	FailFast bool
}

// Stops reports whether no further invocation should run after this one.
func (o Outcome) Stops(runOnce bool) bool {
	return runOnce || (o.ExitCode != 0 && o.FailFast)
}

// Dispatcher runs the runner over configuration files.
type Dispatcher interface {
	// Run runs the runner for every document of every configuration file
	// matching the --config option, or the configured glob, and returns the
	// highest exit code.
	Run(req Request) (int, error)

	// RunFile runs the runner for every document of one configuration file.
	// It returns the highest exit code and whether the dispatch must stop.
	RunFile(req Request, path string) (int, bool, error)

	// RunDocument runs the runner once against configPath, whose content
	// is given to read the directives from.
	RunDocument(req Request, configPath, content string) (Outcome, error)
}

// NewDispatcherParams contains parameters for creating a new Dispatcher instance.
type NewDispatcherParams struct {
	FS     fs.FS
	Runner command.Runner
	Logger logger.Logger
	Config config.Config
}

type realDispatcher struct {
	*base.Base
	config config.Config
}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher(params NewDispatcherParams) Dispatcher {
	return &realDispatcher{
		Base: base.NewBase(base.NewBaseParams{
			FS:     params.FS,
			Runner: params.Runner,
			Logger: params.Logger,
		}),
		config: params.Config,
	}
}
