// Package output writes the result table in several formats and keeps
// checkpoint snapshots durable.
package output

import (
	"fmt"
	"io"
)

// Row is one organization's persisted result. Phone stays empty when
// no number was found.
type Row struct {
	CompanyName string `json:"company_name" yaml:"company_name"`
	Website     string `json:"website" yaml:"website"`
	Phone       string `json:"phone" yaml:"phone"`
}

// Format represents output format types.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Writer serializes result rows.
type Writer interface {
	// Write outputs a single row.
	Write(row Row) error

	// WriteAll outputs multiple rows.
	WriteAll(rows []Row) error

	// Flush ensures all data is written.
	Flush() error

	// Close flushes and releases resources.
	Close() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatCSV, "":
		return NewCSVWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
