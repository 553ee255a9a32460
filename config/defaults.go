package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all settings
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format.indent", DefaultIndent)
	v.SetDefault("format.type_names", TypeNamesFull)

	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.archive", "")
	v.SetDefault("output.encoding", DefaultEncoding)

	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}
