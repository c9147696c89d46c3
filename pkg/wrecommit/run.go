package wrecommit

import (
	"fmt"

	"github.com/lerenn/wre-commit/internal/base"
	"github.com/lerenn/wre-commit/pkg/args"
	"github.com/lerenn/wre-commit/pkg/dispatch"
)

// Run runs pre-commit. A help option anywhere runs it only once.
func (w *realWreCommit) Run(req dispatch.Request) (int, error) {
	if args.HasAny(req.Opts, args.HelpKeys) {
		req.RunOnce = true
	}
	return w.deps.Dispatcher.Run(req)
}

// Help prints the usage and runs pre-commit once.
func (w *realWreCommit) Help(req dispatch.Request) (int, error) {
	w.deps.Logger.Logf("%s", Usage())
	req.RunOnce = true
	return w.Run(req)
}

// Version prints the version and runs pre-commit for every configuration.
func (w *realWreCommit) Version(req dispatch.Request) (int, error) {
	w.deps.Logger.Logf("%s", VersionString())
	return w.Run(req)
}

// VersionString returns the program name and version.
func VersionString() string {
	return fmt.Sprintf("%s %s", base.Name, base.Version)
}
