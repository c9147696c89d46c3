package document

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/lerenn/wre-commit/pkg/fs"
)

// Separator is the YAML document separator line.
const Separator = "---"

// Split splits YAML text into documents. A separator line starts a new
// document only when the current one already has content; the separator line
// itself is kept as the first line of the new document.
//
// With preserveLineNumbers, every document after the first is prefixed with
// one newline per line consumed before it, so line numbers reported for the
// document match the original text.
func Split(r io.Reader, preserveLineNumbers bool) ([]string, error) {
	var docs []string
	var current strings.Builder

	reader := bufio.NewReader(r)
	lines := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if isSeparator(line) && current.Len() > 0 {
				docs = append(docs, current.String())
				current.Reset()
				if preserveLineNumbers {
					current.WriteString(strings.Repeat("\n", lines))
				}
			}
			current.WriteString(line)
			lines++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return append(docs, current.String()), nil
}

// SplitFile reads path through fsys and splits its content with Split.
func SplitFile(fsys fs.FS, path string, preserveLineNumbers bool) ([]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		var fileErr *fs.FileError
		if errors.As(err, &fileErr) {
			err = fileErr.Err
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	docs, err := Split(bytes.NewReader(data), preserveLineNumbers)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return docs, nil
}

func isSeparator(line string) bool {
	return strings.TrimRightFunc(line, unicode.IsSpace) == Separator
}
