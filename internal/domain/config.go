package domain

// Output formats understood by the CLI.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config represents the optional settings loaded from pesel.yaml.
type Config struct {
	Output  OutputConfig
	Masking MaskingConfig
	Log     LogConfig
}

type OutputConfig struct {
	Format string
	ASCII  bool
}

type MaskingConfig struct {
	Enabled bool
}

type LogConfig struct {
	File  string
	Debug bool
}

// DefaultConfig provides the settings used when pesel.yaml is absent or partial.
func DefaultConfig() Config {
	return Config{
		Output:  OutputConfig{Format: FormatPretty},
		Masking: MaskingConfig{Enabled: true},
	}
}
