package main

import (
	"slices"

	"github.com/lerenn/wre-commit/internal/base"
	"github.com/lerenn/wre-commit/pkg/args"
	"github.com/lerenn/wre-commit/pkg/dispatch"
	"github.com/lerenn/wre-commit/pkg/wrecommit"
	"github.com/spf13/cobra"
)

// Commands handled by wre-commit itself rather than passed to pre-commit.
const (
	installCommand   = "install"
	uninstallCommand = "uninstall"
)

// route hands hook invocations straight to pre-commit and everything else to
// the command tree. The wrapper commands keep working when git environment
// variables are exported outside of a hook.
func route(wc wrecommit.WreCommit, req dispatch.Request, cmdArgs []string) (int, error) {
	if req.CalledByGit && !isWrapperCommand(req.Command) {
		return wc.Run(req)
	}
	return newCLI(wc, req).execute(cmdArgs)
}

// isWrapperCommand reports whether command is one of the wre-commit commands
// or options.
func isWrapperCommand(command string) bool {
	switch command {
	case installCommand, uninstallCommand, args.HelpCommand:
		return true
	}
	return slices.Contains(args.HelpKeys, command) || slices.Contains(args.VersionKeys, command)
}

// cli holds the state shared by the commands of a single execution.
type cli struct {
	wc       wrecommit.WreCommit
	req      dispatch.Request
	exitCode int
}

func newCLI(wc wrecommit.WreCommit, req dispatch.Request) *cli {
	return &cli{wc: wc, req: req}
}

// execute runs the command tree over args and returns the exit code.
func (c *cli) execute(cmdArgs []string) (int, error) {
	rootCmd := c.createRootCmd()
	rootCmd.SetArgs(cmdArgs)

	if err := rootCmd.Execute(); err != nil {
		return 1, err
	}
	return c.exitCode, nil
}

func (c *cli) createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   base.Name + " [-h] [-V] {install,uninstall,help,*} ...",
		Short: "Wrapper running pre-commit for every configuration, locally or in a container",
		Long: `wre-commit runs pre-commit once per configuration document found by the
--config glob (default .pre-commit-config*.yaml). Documents carrying a
"### wre-commit-docker-image: <image>" comment run inside that image.

Any command other than install, uninstall and help is passed to pre-commit.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.runRoot()
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetHelpCommand(c.createHelpCmd())
	rootCmd.AddCommand(c.createInstallCmd(), c.createUninstallCmd())

	return rootCmd
}

// runRoot handles the wre-commit options and passes anything else to pre-commit.
func (c *cli) runRoot() error {
	var err error
	switch {
	case slices.Contains(args.HelpKeys, c.req.Command):
		c.exitCode, err = c.wc.Help(c.req)
	case slices.Contains(args.VersionKeys, c.req.Command):
		c.exitCode, err = c.wc.Version(c.req)
	default:
		c.exitCode, err = c.wc.Run(c.req)
	}
	return err
}

func (c *cli) createHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:                args.HelpCommand + " [command]",
		Short:              "Show the wre-commit help and the help of the first pre-commit",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			var err error
			c.exitCode, err = c.wc.Help(c.req)
			return err
		},
	}
}
