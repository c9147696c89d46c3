package hooks

// Install installs the hooks.
func (m *realManager) Install(hookTypes []HookType) error {
	for _, hookType := range hookTypes {
		if err := m.install(hookType); err != nil {
			return err
		}
	}
	return nil
}

func (m *realManager) install(hookType HookType) error {
	hookPath, legacyHookPath, err := m.paths(hookType)
	if err != nil {
		return err
	}

	// Store previous hook
	exists, err := m.FS.Exists(hookPath)
	if err != nil {
		return err
	}
	if exists {
		ours, err := m.isOurs(hookPath)
		if err != nil {
			return err
		}
		if !ours {
			if err := m.FS.Rename(hookPath, legacyHookPath); err != nil {
				return err
			}
			m.Report("Previous hook stored to %s", legacyHookPath)
		}
	}

	// Delete old hook, including a dangling symlink
	exists, err = m.FS.Lexists(hookPath)
	if err != nil {
		return err
	}
	if exists {
		if err := m.FS.Remove(hookPath); err != nil {
			return err
		}
	}

	if err := m.FS.Symlink(m.executable, hookPath); err != nil {
		return err
	}
	m.Report("%s installed at %s", hookType, hookPath)

	return nil
}
