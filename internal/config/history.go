package config

import (
	"fmt"

	"github.com/lgbarn/dreamchess-go/internal/errors"
)

// HistoryConfig holds settings for move history export.
type HistoryConfig struct {
	// Dir is the directory history files are written to
	Dir string

	// AutoExport writes the history when the game ends or the program quits
	AutoExport bool

	// Format selects the export format
	Format HistoryFormat
}

// NewHistoryConfig creates a HistoryConfig with default values.
func NewHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Dir:    "history",
		Format: TextHistory,
	}
}

// Validate checks that the history configuration is valid.
func (h *HistoryConfig) Validate() error {
	if h.Dir == "" {
		return fmt.Errorf("history directory must not be empty: %w", errors.ErrInvalidConfig)
	}
	if h.Format != TextHistory && h.Format != JSONHistory {
		return fmt.Errorf("unknown history format %d: %w", h.Format, errors.ErrInvalidConfig)
	}
	return nil
}
