package dispatch

import (
	"regexp"
	"strings"

	"github.com/lerenn/wre-commit/internal/base"
)

// DockerImageKey is the comment key selecting the container image a
// document runs in.
const DockerImageKey = "### " + base.Name + "-docker-image"

// FailFastKey is the pre-commit key stopping the dispatch on failure.
const FailFastKey = "fail_fast"

var directiveRegexp = regexp.MustCompile(`^([^:]+):([^#]+)`)

// Directives are the settings wre-commit reads from a document.
type Directives struct {
	// Image is the container image to run the runner in, empty for a
	// local run.
	Image string
	// FailFast is set by `fail_fast: true`.
	FailFast bool
}

// ParseDirectives scans the lines of a document for directives. The last
// image directive wins.
func ParseDirectives(content string) Directives {
	var directives Directives

	for _, line := range strings.Split(content, "\n") {
		match := directiveRegexp.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		value := strings.TrimSpace(match[2])
		switch match[1] {
		case DockerImageKey:
			directives.Image = value
		case FailFastKey:
			if value == "true" {
				directives.FailFast = true
			}
		}
	}

	return directives
}
