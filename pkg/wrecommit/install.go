package wrecommit

import "github.com/lerenn/wre-commit/pkg/hooks"

// Install installs the hooks.
func (w *realWreCommit) Install(hookTypes string) error {
	types, err := hooks.ParseHookTypes(hookTypes)
	if err != nil {
		return err
	}
	return w.deps.HookManager.Install(types)
}

// Uninstall uninstalls the hooks.
func (w *realWreCommit) Uninstall(hookTypes string) error {
	types, err := hooks.ParseHookTypes(hookTypes)
	if err != nil {
		return err
	}
	return w.deps.HookManager.Uninstall(types)
}
