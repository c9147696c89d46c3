// Package git provides Git operations and error definitions.
package git

// Git-specific error messages.
const (
	// MsgNoGitDir is reported when git cannot name a Git directory.
	MsgNoGitDir = "No git dir detected"
)
