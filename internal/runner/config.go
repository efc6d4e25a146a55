package runner

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/telsuche/telsuche/internal/output"
)

// Config controls one batch run.
type Config struct {
	// OutputPath is where the result table is written.
	OutputPath string `validate:"required"`

	// Format of the result table (csv, json, yaml).
	Format output.Format `validate:"omitempty,oneof=csv json yaml"`

	// Delay between companies, to stay polite.
	Delay time.Duration `validate:"gte=0"`

	// PageDelay between contact-page fetches within one company.
	PageDelay time.Duration `validate:"gte=0"`

	// CheckpointEvery persists the result table after this many
	// companies.
	CheckpointEvery int `validate:"gte=1"`

	// MaxContactPages bounds how many contact-like pages are tried
	// when the main page yields nothing.
	MaxContactPages int `validate:"gte=0"`

	// MaxContentSize caps the page text handed to the extractor, in
	// bytes. Zero means unlimited.
	MaxContentSize int `validate:"gte=0"`
}

// DefaultConfig returns the reference pacing and checkpoint settings.
func DefaultConfig() Config {
	return Config{
		Format:          output.FormatCSV,
		Delay:           2 * time.Second,
		PageDelay:       time.Second,
		CheckpointEvery: 20,
		MaxContactPages: 3,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid runner config: %w", err)
	}
	return nil
}
