//go:build unit

package base

import (
	"bytes"
	"testing"

	"github.com/lerenn/wre-commit/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewBase_DefaultLogger(t *testing.T) {
	b := NewBase(NewBaseParams{})

	assert.NotNil(t, b.Logger)
	assert.NotPanics(t, func() {
		b.Report("report %d", 1)
		b.Debug("debug %d", 1)
	})
}

func TestBase_ReportAndDebug(t *testing.T) {
	var out, errOut bytes.Buffer
	b := NewBase(NewBaseParams{Logger: logger.NewLogger(&out, &errOut, Name, true)})

	b.Report("%s installed at %s", "pre-commit", ".git/hooks/pre-commit")
	b.Debug("Executing: %s", "pre-commit run")

	assert.Equal(t, "pre-commit installed at .git/hooks/pre-commit\n", out.String())
	assert.Equal(t, "DEBUG: wre-commit: Executing: pre-commit run\n", errOut.String())
}
