// Package hooks installs wre-commit as a git hook and removes it again.
package hooks

import (
	"slices"
	"strings"
)

// HookType identifies a git hook wre-commit can be installed as.
type HookType string

// Supported hook types.
const (
	PreCommit        HookType = "pre-commit"
	CommitMsg        HookType = "commit-msg"
	PostCheckout     HookType = "post-checkout"
	PreMergeCommit   HookType = "pre-merge-commit"
	PrePush          HookType = "pre-push"
	PrepareCommitMsg HookType = "prepare-commit-msg"
)

// SupportedHookTypes lists the supported hook types, the default one first.
var SupportedHookTypes = []HookType{
	PreCommit,
	CommitMsg,
	PostCheckout,
	PreMergeCommit,
	PrePush,
	PrepareCommitMsg,
}

// Validate returns a *HookError when the hook type is not supported.
func (h HookType) Validate() error {
	if !slices.Contains(SupportedHookTypes, h) {
		return &HookError{HookType: string(h), Err: ErrUnsupportedHookType}
	}
	return nil
}

// ParseHookTypes parses a comma-separated list of hook types.
// An empty value selects the default hook type only.
// Every hook type is validated before any is returned.
func ParseHookTypes(value string) ([]HookType, error) {
	if value == "" {
		return SupportedHookTypes[:1:1], nil
	}

	names := strings.Split(value, ",")
	hookTypes := make([]HookType, 0, len(names))
	for _, name := range names {
		hookType := HookType(name)
		if err := hookType.Validate(); err != nil {
			return nil, err
		}
		hookTypes = append(hookTypes, hookType)
	}
	return hookTypes, nil
}
