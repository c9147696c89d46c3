package command

import (
	"regexp"
	"strings"
)

var shebangRegexp = regexp.MustCompile(`^#!(\S+)`)

// Shebang returns the interpreter path from the "#!" line of a script.
func (r *realRunner) Shebang(path string) (string, error) {
	content, err := r.fs.ReadFile(path)
	if err != nil {
		return "", &CommandError{Name: path, Message: "Getting shebang from file " + path, Err: err}
	}

	line, _, _ := strings.Cut(string(content), "\n")
	if match := shebangRegexp.FindStringSubmatch(line); match != nil {
		return match[1], nil
	}

	return "", &CommandError{
		Name:    path,
		Message: "Getting executable from shebang from file " + path,
		Err:     ErrNotFound,
	}
}
