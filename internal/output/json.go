package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONWriter writes the result table as a JSON array.
type JSONWriter struct {
	w    *bufio.Writer
	rows []Row
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:    bufio.NewWriter(w),
		rows: make([]Row, 0),
	}
}

// Write buffers a single row.
func (w *JSONWriter) Write(row Row) error {
	w.rows = append(w.rows, row)
	return nil
}

// WriteAll buffers multiple rows.
func (w *JSONWriter) WriteAll(rows []Row) error {
	w.rows = append(w.rows, rows...)
	return nil
}

// Flush writes the buffered rows as a JSON array.
func (w *JSONWriter) Flush() error {
	out, err := json.MarshalIndent(w.rows, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}
