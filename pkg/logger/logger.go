// Package logger provides logging functionality for the wre-commit application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf writes a formatted user-facing report.
	Logf(format string, args ...interface{})

	// Debugf logs a formatted diagnostic message, shown only in debug mode.
	Debugf(format string, args ...interface{})

	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// defaultLogger writes reports to out and diagnostics through logrus.
type defaultLogger struct {
	mu  sync.Mutex
	out io.Writer
	log *logrus.Logger
}

// NewDefaultLogger creates a logger writing reports to stdout and
// diagnostics to stderr.
func NewDefaultLogger(program string, debug bool) Logger {
	return NewLogger(os.Stdout, os.Stderr, program, debug)
}

// NewLogger creates a logger writing reports to out and diagnostics to errOut.
func NewLogger(out, errOut io.Writer, program string, debug bool) Logger {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&Formatter{Program: program})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return &defaultLogger{out: out, log: log}
}

// Logf writes a formatted message to the report output with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintf(d.out, format+"\n", args...)
}

// Debugf logs a formatted diagnostic message.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	d.log.Debugf(format, args...)
}

// Errorf logs a formatted error message.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.log.Errorf(format, args...)
}
