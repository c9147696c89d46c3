//go:build e2e

package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "wre-commit-e2e-bin-*")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "wre-commit")
	build := exec.Command("go", "build", "-o", binaryPath, "github.com/lerenn/wre-commit/cmd/wre-commit")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		_ = os.RemoveAll(dir)
		panic(err)
	}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}
