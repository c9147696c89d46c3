// Package wrecommit wires the hook manager and the dispatcher behind the
// operations of the wre-commit command line.
package wrecommit

import (
	"github.com/lerenn/wre-commit/pkg/dependencies"
	"github.com/lerenn/wre-commit/pkg/dispatch"
	"github.com/lerenn/wre-commit/pkg/hooks"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=wrecommit.go -destination=mocks/wrecommit.gen.go -package=mocks

// WreCommit interface provides the wre-commit operations.
type WreCommit interface {
	// Install installs wre-commit for the comma separated hook types, or
	// pre-commit when empty.
	Install(hookTypes string) error
	// Uninstall uninstalls wre-commit for the comma separated hook types,
	// or pre-commit when empty.
	Uninstall(hookTypes string) error
	// Run runs pre-commit for every configuration and returns the exit code.
	Run(req dispatch.Request) (int, error)
	// Help prints the usage then runs pre-commit once, so its own help follows.
	Help(req dispatch.Request) (int, error)
	// Version prints the version then runs pre-commit for every configuration.
	Version(req dispatch.Request) (int, error)
}

// NewWreCommitParams contains parameters for creating a new WreCommit instance.
type NewWreCommitParams struct {
	Dependencies *dependencies.Dependencies
	// Executable is the resolved wre-commit path hooks are linked to. It is
	// only needed when no hook manager is set.
	Executable string
}

type realWreCommit struct {
	deps *dependencies.Dependencies
}

// NewWreCommit creates a new WreCommit instance. A missing hook manager or
// dispatcher is built from the other dependencies.
func NewWreCommit(params NewWreCommitParams) (WreCommit, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if deps.HookManager == nil && params.Executable != "" {
		deps.HookManager = hooks.NewManager(hooks.NewManagerParams{
			FS:         deps.FS,
			Git:        deps.Git,
			Logger:     deps.Logger,
			Executable: params.Executable,
		})
	}

	if deps.Dispatcher == nil && deps.Config != nil {
		cfg, err := deps.Config.GetConfigWithFallback()
		if err != nil {
			return nil, err
		}

		deps.Dispatcher = dispatch.NewDispatcher(dispatch.NewDispatcherParams{
			FS:     deps.FS,
			Runner: deps.Runner,
			Logger: deps.Logger,
			Config: cfg,
		})
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realWreCommit{
		deps: deps,
	}, nil
}
