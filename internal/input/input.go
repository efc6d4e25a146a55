// Package input reads the company roster the batch run works through.
package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/telsuche/telsuche/internal/logger"
)

// Company is one organization to look up.
type Company struct {
	Name    string
	Website string
}

// ReadCompanies reads a roster CSV. The file must carry a header row
// with at least the company_name and website columns; extra columns
// are ignored and rows missing either value are skipped.
func ReadCompanies(path string) ([]Company, error) {
	f, err := os.Open(path) //#nosec G304 -- CLI tool reads a user-specified roster
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readCompanies(f)
}

func readCompanies(r io.Reader) ([]Company, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	nameCol, websiteCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case "company_name":
			nameCol = i
		case "website":
			websiteCol = i
		}
	}
	if nameCol < 0 || websiteCol < 0 {
		return nil, fmt.Errorf("roster is missing required columns company_name and website, got %v", header)
	}

	var companies []Company
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		c := Company{
			Name:    fieldAt(record, nameCol),
			Website: fieldAt(record, websiteCol),
		}
		if c.Name == "" || c.Website == "" {
			logger.Debug("skipping malformed roster row", "line", line)
			continue
		}
		companies = append(companies, c)
	}
	return companies, nil
}

func fieldAt(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
