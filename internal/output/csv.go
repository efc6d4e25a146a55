package output

import (
	"encoding/csv"
	"io"
)

// csvHeader is the fixed column set of the result table.
var csvHeader = []string{"company_name", "website", "phone"}

// CSVWriter writes the result table as CSV with a header row.
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write outputs a single row, emitting the header first if needed.
func (w *CSVWriter) Write(row Row) error {
	if !w.wroteHeader {
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	return w.w.Write([]string{row.CompanyName, row.Website, row.Phone})
}

// WriteAll outputs multiple rows.
func (w *CSVWriter) WriteAll(rows []Row) error {
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data, including the header of an empty
// table.
func (w *CSVWriter) Flush() error {
	if !w.wroteHeader {
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	w.w.Flush()
	return w.w.Error()
}

// Close flushes the writer.
func (w *CSVWriter) Close() error {
	return w.Flush()
}

// readCSVRows parses a CSV result table written by CSVWriter.
func readCSVRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(records))
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 3 {
			continue
		}
		rows = append(rows, Row{CompanyName: record[0], Website: record[1], Phone: record[2]})
	}
	return rows, nil
}
