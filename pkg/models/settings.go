package models

// Settings represents the application configuration
type Settings struct {
	Display DisplaySettings `json:"display" yaml:"display" koanf:"display"`
	Log     LogSettings     `json:"log" yaml:"log" koanf:"log"`
	Start   StartSettings   `json:"start" yaml:"start" koanf:"start"`
}

// DisplaySettings controls how amounts and cells are rendered
type DisplaySettings struct {
	Currency       string `json:"currency" yaml:"currency" koanf:"currency"`
	GroupDigits    bool   `json:"group_digits" yaml:"group_digits" koanf:"group_digits"`
	CellWidthScale int    `json:"cell_width_scale" yaml:"cell_width_scale" koanf:"cell_width_scale"` // column width units per terminal cell
}

// LogSettings controls the debug log. An empty File discards all records.
type LogSettings struct {
	File  string `json:"file" yaml:"file" koanf:"file"`
	Level string `json:"level" yaml:"level" koanf:"level"` // debug, info, warn, error
}

// StartSettings controls the document the editor opens with
type StartSettings struct {
	Sample bool `json:"sample" yaml:"sample" koanf:"sample"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Display: DisplaySettings{
			Currency:       "$",
			GroupDigits:    true,
			CellWidthScale: 10,
		},
		Log: LogSettings{
			File:  "",
			Level: "info",
		},
		Start: StartSettings{
			Sample: false,
		},
	}
}

// ToMap flattens the settings into dotted koanf keys.
func (s *Settings) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"display.currency":         s.Display.Currency,
		"display.group_digits":     s.Display.GroupDigits,
		"display.cell_width_scale": s.Display.CellWidthScale,
		"log.file":                 s.Log.File,
		"log.level":                s.Log.Level,
		"start.sample":             s.Start.Sample,
	}
}
