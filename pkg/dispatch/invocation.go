package dispatch

import (
	"fmt"
	"slices"

	"github.com/lerenn/wre-commit/pkg/args"
)

// invocation composes the full command line running the runner against
// configPath.
func (d *realDispatcher) invocation(req Request, configPath string, directives Directives) ([]string, error) {
	var argv []string
	if directives.Image != "" {
		argv = d.containerCommand(req, directives.Image)
	} else {
		local, err := d.localCommand()
		if err != nil {
			return nil, err
		}
		argv = local
	}

	opts := req.Opts
	if req.CalledByGit {
		argv = append(argv, gitArgs(req, configPath)...)
	} else {
		opts = args.RewriteConfigOption(opts, configPath)
	}

	argv = append(argv, opts...)
	return append(argv, req.Args...), nil
}

// containerCommand runs the runner in image with the working directory
// mounted read-write at the same path.
func (d *realDispatcher) containerCommand(req Request, image string) []string {
	argv := []string{
		d.config.ContainerRuntime,
		"run",
		"-v", fmt.Sprintf("%s/:%s/:rw", req.WorkDir, req.WorkDir),
		"-w", req.WorkDir,
		image,
		d.config.Runner,
	}

	if req.CalledByGit {
		return argv
	}

	interactive := "-i"
	if req.Terminal {
		interactive = "-it"
	}
	return slices.Insert(argv, 2, interactive)
}

// localCommand runs the runner found in the search path with the
// interpreter named by its shebang.
func (d *realDispatcher) localCommand() ([]string, error) {
	executable, err := d.Runner.Which(d.config.Runner)
	if err != nil {
		return nil, err
	}

	interpreter, err := d.Runner.Shebang(executable)
	if err != nil {
		return nil, err
	}

	return []string{interpreter, executable}, nil
}

// gitArgs are the runner arguments of a hook run.
func gitArgs(req Request, configPath string) []string {
	return []string{
		"hook-impl",
		"--config", configPath,
		"--hook-type", req.ProgramName,
		"--hook-dir", req.WorkDir,
		args.Terminator,
	}
}
