package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/amazons-go/internal/config"
	"github.com/lgbarn/amazons-go/internal/record"
)

// RecordWriter is the interface for writing game records to output.
type RecordWriter interface {
	// WriteRecord writes a single record to the output.
	WriteRecord(rec *record.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewWriter returns a JSON or text writer as cfg asks.
func NewWriter(w io.Writer, cfg *config.OutputConfig) RecordWriter {
	if cfg != nil && cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes records in the text record format.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteRecord writes a record immediately.
func (tw *TextWriter) WriteRecord(rec *record.Record) error {
	return WriteText(tw.w, rec, tw.cfg)
}

// Flush is a no-op; text records are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as one document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	recs   []*record.Record
	single bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each record
// immediately, one JSON value per record.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteRecord buffers a record (or writes it immediately in single mode).
func (jw *JSONWriter) WriteRecord(rec *record.Record) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(RecordToJSON(rec))
	}
	jw.recs = append(jw.recs, rec)
	return nil
}

// Flush writes all buffered records as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.recs) == 0 {
		return nil
	}
	err := WriteJSON(jw.w, jw.recs)
	jw.recs = jw.recs[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
