package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot persists the full result table accumulated so far. Every
// write is a whole-file replace through a temporary file and an atomic
// rename, so an interrupted run never leaves a corrupt output file.
type Snapshot struct {
	Path   string
	Format Format
}

// Write replaces the snapshot file with the given rows.
func (s *Snapshot) Write(rows []Row) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	w, err := NewWriter(tmp, s.Format)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// ReadCSV reads a CSV snapshot back into rows.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path) //#nosec G304 -- reads the tool's own output file
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return readCSVRows(f)
}
