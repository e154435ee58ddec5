package cli

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-ledger/pkg/models"
)

var (
	validFormats   = []string{"text", "json", "yaml"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateLogLevel validates a log level name
func ValidateLogLevel(level string) error {
	if Contains(validLogLevels, strings.ToLower(level)) {
		return nil
	}
	return fmt.Errorf("invalid log level: %s (must be one of %s)", level, strings.Join(validLogLevels, ", "))
}

// ValidateSettings checks values the loaders cannot type check.
func ValidateSettings(s *models.Settings) error {
	if err := ValidateLogLevel(s.Log.Level); err != nil {
		return err
	}
	if s.Display.CellWidthScale <= 0 {
		return fmt.Errorf("display.cell_width_scale must be positive, got %d", s.Display.CellWidthScale)
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
