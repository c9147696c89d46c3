package logger

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formatter renders entries as "LEVEL: program: message".
type Formatter struct {
	Program string
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	if entry.Level == logrus.WarnLevel {
		level = "WARNING"
	}
	return []byte(fmt.Sprintf("%s: %s: %s\n", level, f.Program, entry.Message)), nil
}
