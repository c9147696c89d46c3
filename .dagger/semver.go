package main

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

type SemVerChange string

const (
	SemVerChangeMajor   SemVerChange = "major"
	SemVerChangeMinor   SemVerChange = "minor"
	SemVerChangePatch   SemVerChange = "patch"
	SemVerChangeNone    SemVerChange = "none"
	SemVerChangeUnknown SemVerChange = ""
)

// ProcessSemVerChange returns the change a commit title implies on the
// angular convention, and the version following current.
func ProcessSemVerChange(current, title string) (SemVerChange, string, error) {
	v, err := version.NewVersion(strings.Trim(current, "\""))
	if err != nil {
		return SemVerChangeUnknown, "", err
	}

	segments := v.Segments()
	major, minor, patch := segments[0], segments[1], segments[2]

	switch {
	case strings.HasPrefix(title, "BREAKING CHANGE"):
		return SemVerChangeMajor, fmt.Sprintf("%d.0.0", major+1), nil
	case strings.HasPrefix(title, "feat"):
		return SemVerChangeMinor, fmt.Sprintf("%d.%d.0", major, minor+1), nil
	case strings.HasPrefix(title, "fix"):
		return SemVerChangePatch, fmt.Sprintf("%d.%d.%d", major, minor, patch+1), nil
	default:
		return SemVerChangeNone, fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
	}
}
