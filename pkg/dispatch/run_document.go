package dispatch

import "strings"

// RunDocument runs the runner once against configPath.
func (d *realDispatcher) RunDocument(req Request, configPath, content string) (Outcome, error) {
	directives := ParseDirectives(content)

	argv, err := d.invocation(req, configPath, directives)
	if err != nil {
		return Outcome{}, err
	}

	d.Debug("Executing: %s", strings.Join(argv, " "))
	code, err := d.Runner.Call(argv)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{ExitCode: code, FailFast: directives.FailFast}, nil
}
