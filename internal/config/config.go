// Package config provides configuration for the chessrules CLI and the
// script replay pipeline.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels for diagnostic output on LogFile.
const (
	Silent   = 0 // Nothing
	Summary  = 1 // One line per game or script
	MoveLog  = 2 // Running commentary, one line per move
	MaxLevel = MoveLog
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls diagnostics written to LogFile.
	Verbosity int

	// Workers is the number of scripts replayed concurrently.
	// Zero means one per CPU.
	Workers int

	// Output formatting.
	Output *OutputConfig

	// File handling
	OutputFilename string
	StartFEN       string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	logMu sync.Mutex
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// WorkerCount resolves Workers to the number of goroutines to start.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Validate checks the configuration for values that cannot be honoured.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if c.Verbosity < Silent || c.Verbosity > MaxLevel {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity must be %d..%d, got %d", Silent, MaxLevel, c.Verbosity)
	}
	if c.Output == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing output settings")
	}
	return c.Output.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
// It may be called from several replay workers at once.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	c.logMu.Lock()
	defer c.logMu.Unlock()
	fmt.Fprintf(c.LogFile, format, args...)
}
