package hooks

// Uninstall uninstalls the hooks.
func (m *realManager) Uninstall(hookTypes []HookType) error {
	for _, hookType := range hookTypes {
		if err := m.uninstall(hookType); err != nil {
			return err
		}
	}
	return nil
}

func (m *realManager) uninstall(hookType HookType) error {
	hookPath, legacyHookPath, err := m.paths(hookType)
	if err != nil {
		return err
	}

	exists, err := m.FS.Exists(hookPath)
	if err != nil || !exists {
		return err
	}

	ours, err := m.isOurs(hookPath)
	if err != nil || !ours {
		return err
	}

	if err := m.FS.Remove(hookPath); err != nil {
		return err
	}
	m.Report("%s uninstalled", hookType)

	// Restore previous hook
	exists, err = m.FS.Exists(legacyHookPath)
	if err != nil || !exists {
		return err
	}
	if err := m.FS.Rename(legacyHookPath, hookPath); err != nil {
		return err
	}
	m.Report("Restored previous hook to %s", hookPath)

	return nil
}
