// Package main provides the wre-commit command line.
package main

import (
	"os"
	"path/filepath"

	"github.com/lerenn/wre-commit/internal/base"
	"github.com/lerenn/wre-commit/pkg/args"
	"github.com/lerenn/wre-commit/pkg/command"
	"github.com/lerenn/wre-commit/pkg/config"
	"github.com/lerenn/wre-commit/pkg/dependencies"
	"github.com/lerenn/wre-commit/pkg/dispatch"
	"github.com/lerenn/wre-commit/pkg/fs"
	"github.com/lerenn/wre-commit/pkg/git"
	"github.com/lerenn/wre-commit/pkg/logger"
	"github.com/lerenn/wre-commit/pkg/wrecommit"
)

func main() {
	os.Exit(run(os.Args))
}

// run executes wre-commit and returns the process exit code.
func run(argv []string) int {
	env, err := readEnvironment()
	if err != nil {
		logger.NewDefaultLogger(base.Name, false).Errorf("Error: %v", err)
		return 1
	}

	log := logger.NewDefaultLogger(base.Name, env.Debug)
	code, err := execute(argv, env, log)
	if err != nil {
		log.Errorf("Error: %v", err)
		return 1
	}
	return code
}

func execute(argv []string, env environment, log logger.Logger) (int, error) {
	wc, err := newWreCommit(env, log)
	if err != nil {
		return 1, err
	}

	return route(wc, newRequest(argv, env), argv[1:])
}

func newWreCommit(env environment, log logger.Logger) (wrecommit.WreCommit, error) {
	fsys := fs.NewFS()
	runner := command.NewRunner(command.NewRunnerParams{
		FS:         fsys,
		SearchPath: env.SearchPath,
	})

	return wrecommit.NewWreCommit(wrecommit.NewWreCommitParams{
		Dependencies: dependencies.New().
			WithFS(fsys).
			WithRunner(runner).
			WithGit(git.NewGit(runner)).
			WithLogger(log).
			WithConfig(config.NewManager(config.DefaultConfigPath(env.Settings))),
		Executable: env.Executable,
	})
}

// newRequest builds the dispatch request from argv and the environment.
func newRequest(argv []string, env environment) dispatch.Request {
	opts, positional := args.Split(argv[1:])

	return dispatch.Request{
		ProgramName: filepath.Base(argv[0]),
		Opts:        opts,
		Args:        positional,
		Command:     args.Command(opts),
		CalledByGit: env.CalledByGit,
		WorkDir:     env.WorkDir,
		Terminal:    env.Terminal,
	}
}
