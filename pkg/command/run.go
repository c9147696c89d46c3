package command

import (
	"os/exec"
)

// Run executes argv in dir and returns its combined output.
// The working directory is restored afterwards, whether the command succeeded or not.
func (r *realRunner) Run(argv []string, dir string) (output string, err error) {
	if len(argv) == 0 {
		return "", &CommandError{Message: "Execution of command failed", Err: ErrEmptyCommand}
	}

	if dir != "" {
		oldDir, wdErr := r.fs.Getwd()
		if wdErr != nil {
			return "", wdErr
		}
		if chdirErr := r.fs.Chdir(dir); chdirErr != nil {
			return "", chdirErr
		}
		defer func() {
			if chdirErr := r.fs.Chdir(oldDir); chdirErr != nil && err == nil {
				output, err = "", chdirErr
			}
		}()
	}

	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204
	out, runErr := cmd.CombinedOutput()
	if runErr != nil {
		return "", &CommandError{
			Name:    argv[0],
			Message: "Execution of command `" + argv[0] + "` failed",
			Output:  string(out),
			Err:     runErr,
		}
	}

	return string(out), nil
}
