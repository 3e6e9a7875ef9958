package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/misectl/misectl/src/internal/constants"
	"github.com/spf13/viper"
)

// Output formats accepted by --output and the `output` key
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// DefaultRegistryCacheTTL is how long `mise registry --json` output is reused
const DefaultRegistryCacheTTL = 24 * time.Hour

// Settings is the user configuration read from config.yaml and MISECTL_* variables
type Settings struct {
	MiseBin          string        // Explicit mise binary, used before PATH lookup
	Verbose          bool          // Enable debug output
	Output           string        // table, json or yaml
	RegistryCacheTTL time.Duration // Zero disables the registry cache
}

// Load reads the config file at path (missing file is fine) and applies
// MISECTL_* environment overrides, e.g. MISECTL_OUTPUT=json.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("mise_bin", "")
	v.SetDefault("verbose", false)
	v.SetDefault("output", OutputTable)
	v.SetDefault("registry_cache_ttl", DefaultRegistryCacheTTL.String())

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	settings := &Settings{
		MiseBin:          strings.TrimSpace(v.GetString("mise_bin")),
		Verbose:          v.GetBool("verbose"),
		Output:           strings.ToLower(strings.TrimSpace(v.GetString("output"))),
		RegistryCacheTTL: v.GetDuration("registry_cache_ttl"),
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks that the settings hold supported values
func (s *Settings) Validate() error {
	if err := ValidateOutput(s.Output); err != nil {
		return err
	}
	if s.RegistryCacheTTL < 0 {
		return fmt.Errorf("registry_cache_ttl must not be negative, got %s", s.RegistryCacheTTL)
	}
	return nil
}

// ValidateOutput rejects unknown output formats
func ValidateOutput(format string) error {
	switch format {
	case OutputTable, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want %s, %s or %s)", format, OutputTable, OutputJSON, OutputYAML)
	}
}
