// Package config holds jcm's render and output settings, loaded through
// viper from defaults, TOML files and JCM_ environment variables.
package config

// Config represents the jcm configuration
type Config struct {
	Format FormatConfig `mapstructure:"format"`
	Output OutputConfig `mapstructure:"output"`
	Watch  WatchConfig  `mapstructure:"watch"`
}

// FormatConfig controls how the formatter prints code
type FormatConfig struct {
	Indent    string `mapstructure:"indent"`     // indentation unit (default: four spaces)
	TypeNames string `mapstructure:"type_names"` // "full" or "simple"
}

// OutputConfig controls where rendered files go
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`      // output root for `jcm render` (default: "gen")
	Archive  string `mapstructure:"archive"`  // zip archive path; empty = write to Dir
	Encoding string `mapstructure:"encoding"` // only utf-8 is supported
}

// WatchConfig configures `jcm render --watch`
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"` // quiet period before a rebuild; 0 = rebuild on every event
}

// Type name modes
const (
	TypeNamesFull   = "full"
	TypeNamesSimple = "simple"
)

// Defaults
const (
	DefaultIndent     = "    "
	DefaultOutputDir  = "gen"
	DefaultEncoding   = "utf-8"
	DefaultDebounceMS = 200
)
