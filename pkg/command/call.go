package command

import (
	"errors"
	"os/exec"
)

// Call executes argv with the runner's standard streams attached, so the
// child keeps interactive terminal behavior, and returns its exit code.
// A child killed by a signal is reported as exit code 1.
func (r *realRunner) Call(argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, &CommandError{Message: "Execution of command failed", Err: ErrEmptyCommand}
	}

	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code, nil
		}
		return 1, nil
	}

	return 0, &CommandError{
		Name:    argv[0],
		Message: "Execution of command `" + argv[0] + "` failed",
		Err:     err,
	}
}
