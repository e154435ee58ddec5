package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-ledger/pkg/models"
)

const (
	// SettingsFile is looked up in the working directory when no
	// --config path is given.
	SettingsFile = "ledger.yaml"

	envPrefix = "LEDGER_"
)

// flagKeys maps command line flags onto settings keys. Flags not listed
// here do not take part in settings.
var flagKeys = map[string]string{
	"currency":  "display.currency",
	"sample":    "start.sample",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// LoadSettings layers defaults, the settings file, LEDGER_ environment
// variables and explicitly set flags, in increasing priority. It returns
// the settings and the file that was read, if any.
func LoadSettings(path string, flags *pflag.FlagSet) (*models.Settings, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(models.DefaultSettings().ToMap(), "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	used, err := findSettingsFile(path)
	if err != nil {
		return nil, "", err
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading settings file %s: %w", used, err)
		}
	}

	// LEDGER_DISPLAY_GROUP_DIGITS -> display.group_digits
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var settings models.Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, "", fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := ValidateSettings(&settings); err != nil {
		return nil, "", err
	}
	return &settings, used, nil
}

// envKey splits the section off at the first underscore only, so option
// names keep theirs.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, option, found := strings.Cut(s, "_")
	if !found {
		return s
	}
	return section + "." + option
}

func findSettingsFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("settings file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(SettingsFile); err == nil {
		return SettingsFile, nil
	}
	return "", nil
}

// WriteSettings writes settings as YAML, creating parent directories.
func WriteSettings(path string, settings *models.Settings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for settings: %w", err)
		}
	}

	content, err := yamlv3.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
