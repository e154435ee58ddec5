package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/pluqqy-ledger/pkg/models"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f), f)
	}
	assert.EqualError(t, ValidateOutputFormat("xml"), "invalid output format: xml (must be: text, json, or yaml)")
}

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"INFO", false},
		{"warn", false},
		{"error", false},
		{"trace", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSettings(t *testing.T) {
	assert.NoError(t, ValidateSettings(models.DefaultSettings()))

	s := models.DefaultSettings()
	s.Display.CellWidthScale = -1
	assert.EqualError(t, ValidateSettings(s), "display.cell_width_scale must be positive, got -1")
}
