package command

import (
	"io"
	"os"

	"github.com/lerenn/wre-commit/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mocks/runner.gen.go -package=mocks

// Runner interface provides process execution capabilities.
type Runner interface {
	// Run executes argv in dir (current directory if empty) and returns its
	// combined stdout and stderr. A non-zero exit is a *CommandError.
	Run(argv []string, dir string) (string, error)

	// Call executes argv attached to the terminal and returns its exit code.
	Call(argv []string) (int, error)

	// Which finds an executable by scanning the search path in order.
	Which(name string) (string, error)

	// Shebang returns the interpreter named on the first line of a script.
	Shebang(path string) (string, error)
}

// NewRunnerParams contains parameters for creating a new Runner instance.
type NewRunnerParams struct {
	FS fs.FS
	// SearchPath is the PATH snapshot used by Which.
	SearchPath string
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

type realRunner struct {
	fs         fs.FS
	searchPath string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// NewRunner creates a new Runner instance.
func NewRunner(params NewRunnerParams) Runner {
	r := &realRunner{
		fs:         params.FS,
		searchPath: params.SearchPath,
		stdin:      params.Stdin,
		stdout:     params.Stdout,
		stderr:     params.Stderr,
	}

	if r.fs == nil {
		r.fs = fs.NewFS()
	}
	if r.stdin == nil {
		r.stdin = os.Stdin
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}

	return r
}
