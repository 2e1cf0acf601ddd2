package configfinder

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pesel/internal/domain"
	"github.com/aalvaropc/pesel/internal/ports"
)

var _ ports.ConfigLocator = (*Finder)(nil)

// LoadConfig loads a pesel.yaml file and applies defaults for missing keys.
func LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if f := strings.ToLower(strings.TrimSpace(y.Pesel.Output.Format)); f != "" {
		if f != domain.FormatPretty && f != domain.FormatJSON {
			return cfg, &domain.OpError{
				Op:   "configfinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("%w: output.format %q (expected pretty|json)", domain.ErrInvalidConfig, f),
			}
		}
		cfg.Output.Format = f
	}
	if y.Pesel.Output.ASCII != nil {
		cfg.Output.ASCII = *y.Pesel.Output.ASCII
	}
	if y.Pesel.Masking.Enabled != nil {
		cfg.Masking.Enabled = *y.Pesel.Masking.Enabled
	}
	if y.Pesel.Log.File != "" {
		cfg.Log.File = y.Pesel.Log.File
	}
	if y.Pesel.Log.Debug != nil {
		cfg.Log.Debug = *y.Pesel.Log.Debug
	}

	return cfg, nil
}

// Resolve picks the configuration for a run.
//
// An explicit path must exist. Otherwise the nearest pesel.yaml at or above
// startDir is used, and defaults apply when there is none. The returned path is
// empty when defaults were used.
func Resolve(locator ports.ConfigLocator, explicit, startDir string) (domain.Config, string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		cfg, err := LoadConfig(p)
		return cfg, p, err
	}

	if locator == nil {
		return domain.DefaultConfig(), "", nil
	}

	p, err := locator.FindConfig(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}

	cfg, err := LoadConfig(p)
	return cfg, p, err
}

type yamlConfig struct {
	Pesel struct {
		Output struct {
			Format string `yaml:"format"`
			ASCII  *bool  `yaml:"ascii"`
		} `yaml:"output"`

		Masking struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"masking"`

		Log struct {
			File  string `yaml:"file"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"log"`
	} `yaml:"pesel"`
}
