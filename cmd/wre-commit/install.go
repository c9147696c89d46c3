package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) createInstallCmd() *cobra.Command {
	var hookTypes string

	installCmd := &cobra.Command{
		Use:   installCommand + " [-t|--hook-type <type>[,<type>...]]",
		Short: "Install the wre-commit script as a symlink",
		Long: `Install wre-commit as git hooks of the current repository.

A hook already in place that was not installed by wre-commit is kept
next to it with the .legacy.wre-commit suffix.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.wc.Install(hookTypes)
		},
	}

	installCmd.Flags().StringVarP(&hookTypes, "hook-type", "t", "", "Comma separated hook types (default pre-commit)")

	return installCmd
}

func (c *cli) createUninstallCmd() *cobra.Command {
	var hookTypes string

	uninstallCmd := &cobra.Command{
		Use:   uninstallCommand + " [-t|--hook-type <type>[,<type>...]]",
		Short: "Uninstall the wre-commit script",
		Long: `Uninstall the wre-commit git hooks of the current repository and
restore the hooks they replaced. Hooks not installed by wre-commit are
left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.wc.Uninstall(hookTypes)
		},
	}

	uninstallCmd.Flags().StringVarP(&hookTypes, "hook-type", "t", "", "Comma separated hook types (default pre-commit)")

	return uninstallCmd
}
