package hooks

import "strings"

// Signature is embedded in the wre-commit executable and identifies a hook
// as installed by wre-commit. Keep it byte-for-byte identical across
// releases: uninstall and reinstall rely on recognizing hooks installed by
// any earlier version.
const Signature = "wre-commit:hook-signature:v1"

// LegacySignature is found in the hook scripts of the Python releases.
const LegacySignature = "from wre_commit.main import main"

// signatures are kept in variables so that they are stored whole in the
// executable data, where HasSignature finds Signature once the hook links
// back to the binary.
var signatures = []string{Signature, LegacySignature}

// HasSignature reports whether content belongs to a wre-commit hook.
func HasSignature(content []byte) bool {
	text := string(content)
	for _, signature := range signatures {
		if strings.Contains(text, signature) {
			return true
		}
	}
	return false
}
