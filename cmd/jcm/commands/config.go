package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/teranos/jcodemodel/config"
	"github.com/teranos/jcodemodel/errors"
	"gopkg.in/yaml.v3"
)

// ConfigCmd groups configuration commands
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect jcm configuration",
	Long: `Inspect the effective jcm configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (JCM_* prefix, e.g. JCM_FORMAT_INDENT)
3. Project config (jcm.toml in the working directory or a parent)
4. User config (~/.jcm/jcm.toml)
5. System config (/etc/jcm/jcm.toml)
6. Default values`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(); err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		return showConfig(cmd.OutOrStdout(), config.GetViper().AllSettings(), configFormat)
	},
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, yaml, json")
	ConfigCmd.AddCommand(configShowCmd)
}

func showConfig(w io.Writer, settings map[string]any, format string) error {
	switch format {
	case "toml":
		data, err := toml.Marshal(settings)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(w, "# jcm configuration\n%s", data)
	case "yaml":
		data, err := yaml.Marshal(settings)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(w, "# jcm configuration\n%s", data)
	case "json":
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(w, string(data))
	default:
		return errors.NewIllegalArgumentError("unsupported format: %s (supported: toml, yaml, json)", format)
	}
	return nil
}
