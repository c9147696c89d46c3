// Package args inspects and rewrites the raw options forwarded to the runner.
//
// wre-commit does not own its command line: apart from a few keys it reads,
// everything is passed to pre-commit untouched, so options are handled as
// plain string slices rather than declared flags.
package args

import (
	"slices"
	"strings"
)

// Terminator separates options from positional arguments passed verbatim.
const Terminator = "--"

// Option keys read by wre-commit.
var (
	ConfigKeys   = []string{"-c", "--config"}
	HookTypeKeys = []string{"-t", "--hook-type"}
	HelpKeys     = []string{"-h", "--help"}
	VersionKeys  = []string{"-V", "--version"}
)

// HelpCommand is the runner command that never needs a configuration file.
const HelpCommand = "help"

// Split separates argv at the first Terminator. Options come before it;
// positional arguments start with the Terminator itself.
func Split(argv []string) (opts, positional []string) {
	index := slices.Index(argv, Terminator)
	if index < 0 {
		return slices.Clone(argv), nil
	}
	return slices.Clone(argv[:index]), slices.Clone(argv[index:])
}

// Command returns the first option, or an empty string.
func Command(opts []string) string {
	if len(opts) == 0 {
		return ""
	}
	return opts[0]
}

// Option returns the value of the first of keys found in opts, either as
// "key value" or "key=value", or def when none is set.
func Option(opts []string, keys []string, def string) string {
	last := len(opts) - 1
	for i, opt := range opts {
		if slices.Contains(keys, opt) && i < last {
			return opts[i+1]
		}
		if key, value, found := strings.Cut(opt, "="); found && slices.Contains(keys, key) {
			return value
		}
	}
	return def
}

// HasAny reports whether any of keys appears as an option on its own.
func HasAny(opts []string, keys []string) bool {
	return slices.ContainsFunc(opts, func(opt string) bool {
		return slices.Contains(keys, opt)
	})
}

// RewriteConfigOption returns a copy of opts whose first config option
// points at value. "-c x" and "--config x" get their value replaced,
// "-c=x" and "--config=x" are rewritten in place. Without any config option,
// "--config=value" is appended unless the command is HelpCommand.
func RewriteConfigOption(opts []string, value string) []string {
	rewritten := slices.Clone(opts)

	last := len(rewritten) - 1
	for i, opt := range rewritten {
		if slices.Contains(ConfigKeys, opt) && i < last {
			rewritten[i+1] = value
			return rewritten
		}
		if key, _, _ := strings.Cut(opt, "="); slices.Contains(ConfigKeys, key) {
			rewritten[i] = key + "=" + value
			return rewritten
		}
	}

	if Command(opts) == HelpCommand {
		return rewritten
	}
	return append(rewritten, "--config="+value)
}
