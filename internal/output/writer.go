package output

import (
	"io"

	"github.com/lgbarn/draughts-go/internal/config"
	"github.com/lgbarn/draughts-go/internal/engine"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PDN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *engine.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// PDNWriter writes games in PDN format, separated by blank lines.
type PDNWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	written int
}

// NewPDNWriter creates a new PDN writer. A nil cfg uses the defaults.
func NewPDNWriter(w io.Writer, cfg *config.OutputConfig) *PDNWriter {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	return &PDNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game in PDN format.
func (pw *PDNWriter) WriteGame(game *engine.Game) error {
	if pw.written > 0 {
		if _, err := io.WriteString(pw.w, pw.cfg.NewLine); err != nil {
			return err
		}
	}
	if err := WritePDN(pw.w, game, pw.cfg); err != nil {
		return err
	}
	pw.written++
	return nil
}

// Flush flushes the PDN writer (no-op for PDN as it writes immediately).
func (pw *PDNWriter) Flush() error {
	return nil
}

// Close closes the PDN writer.
func (pw *PDNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*engine.Game
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
// Buffered games are snapshotted so later moves do not change the output.
func (jw *JSONWriter) WriteGame(game *engine.Game) error {
	if jw.single {
		return WriteGameJSON(jw.w, game)
	}
	jw.games = append(jw.games, game.Clone())
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := WriteGamesJSON(jw.w, jw.games)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
