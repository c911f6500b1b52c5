package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// Writer is the interface for writing game snapshots and replay reports.
// Different implementations handle different output formats.
type Writer interface {
	// WriteGame writes the current state of a game.
	WriteGame(g *engine.Game) error

	// WriteReport writes the outcome of a replayed script.
	WriteReport(r *processing.Report) error

	// WriteError writes a script that could not be replayed at all.
	WriteError(name string, err error) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) Writer {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes human-readable boards and report summaries.
type TextWriter struct {
	w       io.Writer
	cfg     *config.Config
	palette *Palette
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	tw := &TextWriter{w: w, cfg: cfg}
	if cfg.Output.Colour {
		tw.palette = NewPalette()
	}
	return tw
}

// WriteGame renders the board followed, when enabled, by both sides'
// living pieces.
func (tw *TextWriter) WriteGame(g *engine.Game) error {
	board := g.Snapshot()
	RenderBoard(tw.w, &board, tw.palette)
	if tw.cfg.Output.ShowLivingPieces {
		RenderLivingPieces(tw.w, g, g.ToMove().Opposite())
		RenderLivingPieces(tw.w, g, g.ToMove())
	}
	return nil
}

// WriteReport writes the report summary. Rejected lines are listed when
// the log level asks for per-move detail.
func (tw *TextWriter) WriteReport(r *processing.Report) error {
	if _, err := fmt.Fprintln(tw.w, r); err != nil {
		return err
	}
	if tw.cfg.Verbosity < config.MoveLog {
		return nil
	}
	for _, s := range r.Steps {
		if !s.Accepted {
			fmt.Fprintf(tw.w, "  line %d: %s: %v\n", s.Line, s.Command, s.Err)
		}
	}
	for _, err := range r.ParseErrors {
		fmt.Fprintf(tw.w, "  %v\n", err)
	}
	return nil
}

// WriteError writes a one-line failure.
func (tw *TextWriter) WriteError(name string, err error) error {
	_, werr := fmt.Fprintf(tw.w, "%s: %v\n", name, err)
	return werr
}

// Flush is a no-op for text, which is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes snapshots immediately and buffers reports, writing
// them as one JSON document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	reports []*JSONReport
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteGame writes a JSON snapshot of the game.
func (jw *JSONWriter) WriteGame(g *engine.Game) error {
	return jw.encode(SnapshotToJSON(g, jw.cfg.Output.ShowLegalMoves))
}

// WriteReport buffers a report for batch output.
func (jw *JSONWriter) WriteReport(r *processing.Report) error {
	jw.reports = append(jw.reports, ReportToJSON(r, jw.cfg.Verbosity >= config.MoveLog))
	return nil
}

// WriteError buffers a report entry for a script that failed.
func (jw *JSONWriter) WriteError(name string, err error) error {
	jw.reports = append(jw.reports, &JSONReport{Name: name, Error: err.Error()})
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.reports) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Reports: jw.reports})
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
