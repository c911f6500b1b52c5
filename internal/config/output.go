package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how boards and reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable board and messages
	JSON                     // One JSON document per board or report
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", s)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// Colour renders the text board with ANSI colours
	Colour bool

	// ShowLegalMoves lists the legal destinations of the piece last asked about
	ShowLegalMoves bool

	// ShowLivingPieces prints each side's living piece identities after every move
	ShowLivingPieces bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:           Text,
		ShowLivingPieces: true,
	}
}

// Validate rejects formats that have no writer.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %v", o.Format)
	}
	return nil
}
