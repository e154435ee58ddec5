package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/pluqqy/pluqqy-ledger/pkg/models"
	"github.com/pluqqy/pluqqy-ledger/pkg/sheet"
)

// CommandContext carries what most commands need: the settings and the
// document they start from.
type CommandContext struct {
	ConfigPath   string
	SettingsFile string
	Settings     *models.Settings
	flags        *pflag.FlagSet
}

// NewCommandContext creates a command context. configPath is the --config
// value, empty for the default lookup.
func NewCommandContext(configPath string, flags *pflag.FlagSet) *CommandContext {
	return &CommandContext{
		ConfigPath: configPath,
		flags:      flags,
	}
}

// LoadSettings loads the layered settings once and caches them.
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, used, err := LoadSettings(c.ConfigPath, c.flags)
	if err != nil {
		return nil, err
	}

	c.Settings = settings
	c.SettingsFile = used
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns the defaults on error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
		c.Settings = settings
	}
	return settings
}

// NewDocument returns the document a session starts with: the sample
// document when start.sample is set, by --sample or any other layer.
func (c *CommandContext) NewDocument() sheet.Document {
	ids := sheet.NewIDGenerator()
	if c.LoadSettingsWithDefault().Start.Sample {
		return sheet.SampleDocument(ids)
	}
	return sheet.NewDocument(ids)
}

// FormatAmount renders an amount with the configured currency display.
func (c *CommandContext) FormatAmount(d decimal.Decimal) string {
	display := c.LoadSettingsWithDefault().Display
	return sheet.FormatAmount(d, display.Currency, display.GroupDigits)
}
