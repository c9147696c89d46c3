package dispatch

import "github.com/lerenn/wre-commit/pkg/args"

// Run runs the runner for every matching configuration file, in sorted order.
func (d *realDispatcher) Run(req Request) (int, error) {
	if req.WorkDir == "" {
		workDir, err := d.FS.Getwd()
		if err != nil {
			return 0, err
		}
		req.WorkDir = workDir
	}

	pattern := args.Option(req.Opts, args.ConfigKeys, d.config.ConfigGlob)
	paths, err := d.FS.Glob(pattern)
	if err != nil {
		return 0, err
	}

	exitCode := 0
	for _, path := range paths {
		code, stop, err := d.RunFile(req, path)
		if err != nil {
			return exitCode, err
		}

		exitCode = max(exitCode, code)
		if stop {
			break
		}
	}

	return exitCode, nil
}
