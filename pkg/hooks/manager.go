package hooks

import (
	"path/filepath"

	"github.com/lerenn/wre-commit/internal/base"
	"github.com/lerenn/wre-commit/pkg/fs"
	"github.com/lerenn/wre-commit/pkg/git"
	"github.com/lerenn/wre-commit/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager installs and uninstalls wre-commit as git hooks.
type Manager interface {
	// Install links each hook to the wre-commit executable, keeping a
	// foreign hook already in place as a legacy backup.
	Install(hookTypes []HookType) error

	// Uninstall removes each hook installed by wre-commit and restores its
	// legacy backup. Foreign hooks are left untouched.
	Uninstall(hookTypes []HookType) error
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS     fs.FS
	Git    git.Git
	Logger logger.Logger
	// Executable is the resolved path hooks are linked to.
	Executable string
	// Root is the directory the git repository is looked up from.
	Root string
}

type realManager struct {
	*base.Base
	git        git.Git
	executable string
	root       string
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) Manager {
	root := params.Root
	if root == "" {
		root = "."
	}

	return &realManager{
		Base:       base.NewBase(base.NewBaseParams{FS: params.FS, Logger: params.Logger}),
		git:        params.Git,
		executable: params.Executable,
		root:       root,
	}
}

// paths returns the hook path and its legacy backup path.
func (m *realManager) paths(hookType HookType) (string, string, error) {
	if err := hookType.Validate(); err != nil {
		return "", "", err
	}

	gitDir, err := m.git.GitDir(m.root)
	if err != nil {
		return "", "", err
	}

	hookPath := filepath.Join(gitDir, "hooks", string(hookType))
	return hookPath, LegacyPath(hookPath), nil
}

// LegacyPath returns where a foreign hook at hookPath is backed up.
func LegacyPath(hookPath string) string {
	return hookPath + ".legacy." + base.Name
}

// isOurs reports whether the hook at path carries the wre-commit signature.
func (m *realManager) isOurs(path string) (bool, error) {
	content, err := m.FS.ReadFile(path)
	if err != nil {
		return false, err
	}
	return HasSignature(content), nil
}
