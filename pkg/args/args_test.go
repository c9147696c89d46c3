//go:build unit

package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		argv       []string
		opts       []string
		positional []string
	}{
		{name: "empty", argv: nil, opts: nil, positional: nil},
		{name: "options only", argv: []string{"run", "-a"}, opts: []string{"run", "-a"}},
		{
			name:       "terminator",
			argv:       []string{"run", "--files", "--", "a.go", "--", "b.go"},
			opts:       []string{"run", "--files"},
			positional: []string{"--", "a.go", "--", "b.go"},
		},
		{name: "leading terminator", argv: []string{"--", "x"}, opts: []string{}, positional: []string{"--", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, positional := Split(tt.argv)
			assert.Equal(t, tt.opts, opts)
			assert.Equal(t, tt.positional, positional)
		})
	}
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "", Command(nil))
	assert.Equal(t, "install", Command([]string{"install", "-t", "pre-push"}))
}

func TestOption(t *testing.T) {
	tests := []struct {
		name     string
		opts     []string
		expected string
	}{
		{name: "missing", opts: []string{"run", "-a"}, expected: "default"},
		{name: "short separate", opts: []string{"run", "-c", "x.yaml"}, expected: "x.yaml"},
		{name: "long separate", opts: []string{"--config", "x.yaml", "run"}, expected: "x.yaml"},
		{name: "short joined", opts: []string{"run", "-c=x.yaml"}, expected: "x.yaml"},
		{name: "long joined", opts: []string{"--config=x=y.yaml"}, expected: "x=y.yaml"},
		{name: "first wins", opts: []string{"-c", "a.yaml", "--config=b.yaml"}, expected: "a.yaml"},
		{name: "trailing key without value", opts: []string{"run", "-c"}, expected: "default"},
		{name: "other key", opts: []string{"--color=always"}, expected: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Option(tt.opts, ConfigKeys, "default"))
		})
	}
}

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny([]string{"run", "--help"}, HelpKeys))
	assert.True(t, HasAny([]string{"-h"}, HelpKeys))
	assert.False(t, HasAny([]string{"run", "--help=x"}, HelpKeys))
	assert.False(t, HasAny(nil, HelpKeys))
}

func TestRewriteConfigOption(t *testing.T) {
	tests := []struct {
		name     string
		opts     []string
		expected []string
	}{
		{
			name:     "append when missing",
			opts:     []string{"run", "--all-files"},
			expected: []string{"run", "--all-files", "--config=tmp.yaml"},
		},
		{
			name:     "append to empty",
			opts:     nil,
			expected: []string{"--config=tmp.yaml"},
		},
		{
			name:     "short separate",
			opts:     []string{"run", "-c", ".pre-commit-config*.yaml", "-a"},
			expected: []string{"run", "-c", "tmp.yaml", "-a"},
		},
		{
			name:     "long separate",
			opts:     []string{"--config", "x.yaml", "run"},
			expected: []string{"--config", "tmp.yaml", "run"},
		},
		{
			name:     "short joined",
			opts:     []string{"run", "-c=x.yaml"},
			expected: []string{"run", "-c=tmp.yaml"},
		},
		{
			name:     "long joined",
			opts:     []string{"run", "--config=x.yaml", "--config=y.yaml"},
			expected: []string{"run", "--config=tmp.yaml", "--config=y.yaml"},
		},
		{
			name:     "trailing key gets joined value",
			opts:     []string{"run", "-c"},
			expected: []string{"run", "-c=tmp.yaml"},
		},
		{
			name:     "help command without config",
			opts:     []string{"help", "run"},
			expected: []string{"help", "run"},
		},
		{
			name:     "help command with config",
			opts:     []string{"help", "--config=x.yaml"},
			expected: []string{"help", "--config=tmp.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RewriteConfigOption(tt.opts, "tmp.yaml"))
		})
	}
}

func TestRewriteConfigOption_DoesNotModifyInput(t *testing.T) {
	opts := []string{"run", "-c", "original.yaml"}

	rewritten := RewriteConfigOption(opts, "first.yaml")
	assert.Equal(t, []string{"run", "-c", "first.yaml"}, rewritten)
	assert.Equal(t, []string{"run", "-c", "original.yaml"}, opts)

	appended := []string{"run"}
	_ = RewriteConfigOption(appended[:1:1], "x.yaml")
	assert.Equal(t, []string{"run"}, appended)
}
