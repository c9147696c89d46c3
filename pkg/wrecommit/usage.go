package wrecommit

import (
	"strings"

	"github.com/lerenn/wre-commit/internal/base"
)

const usage = `usage: {NAME} [-h] [-V] {install,uninstall,help,*} ...

positional arguments:
    install             Install the {NAME} script as a symlink.
    uninstall           Uninstall the {NAME} script.
    help                Show help for a specific command of the {NAME}
                        and the first pre-commit and exit.
    *                   Run pre-commit(s) with the command and arguments.

optional arguments:
  -h, --help            show help message of the {NAME} and the first
                        pre-commit and exit
  -V, --version         show version number of the {NAME} and all
                        pre-commits and exit
`

// Usage returns the wre-commit usage text.
func Usage() string {
	return strings.ReplaceAll(usage, "{NAME}", base.Name)
}
