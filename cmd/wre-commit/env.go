package main

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
)

// Environment variables read at startup.
const (
	EnvDebug    = "WRE_COMMIT_DEBUG"
	EnvGitDate  = "GIT_AUTHOR_DATE"
	EnvPath     = "PATH"
	EnvSettings = "WRE_COMMIT_SETTINGS"
)

// environment is the process state wre-commit depends on, captured once.
type environment struct {
	Debug       bool
	CalledByGit bool
	SearchPath  string
	Settings    string
	WorkDir     string
	Terminal    bool
	Executable  string
}

// readEnvironment snapshots the process environment.
func readEnvironment() (environment, error) {
	_, debug := os.LookupEnv(EnvDebug)
	_, calledByGit := os.LookupEnv(EnvGitDate)

	workDir, err := os.Getwd()
	if err != nil {
		return environment{}, err
	}

	executable, err := os.Executable()
	if err != nil {
		return environment{}, err
	}
	executable, err = filepath.EvalSymlinks(executable)
	if err != nil {
		return environment{}, err
	}

	fd := os.Stdin.Fd()
	return environment{
		Debug:       debug,
		CalledByGit: calledByGit,
		SearchPath:  os.Getenv(EnvPath),
		Settings:    os.Getenv(EnvSettings),
		WorkDir:     workDir,
		Terminal:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Executable:  executable,
	}, nil
}
