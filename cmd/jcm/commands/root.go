package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/logger"
)

// RootCmd is the jcm entry point
var RootCmd = &cobra.Command{
	Use:   "jcm",
	Short: "jcm - render Java source from code model manifests",
	Long: `jcm - render Java source from code model manifests.

A manifest (YAML or TOML) lists fragments: statement bodies with optional
contract overlays. jcm builds each fragment into a code model and prints it
as Java source.

Available commands:
  render  - Render a manifest into a directory or zip archive
  check   - Verify that rendered sources on disk are up to date
  config  - Show the effective configuration
  version - Show build information

Examples:
  jcm render api.yaml -o src/main/java
  jcm render api.yaml --archive gen.zip
  jcm render api.yaml --watch
  jcm check api.yaml -o src/main/java`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugw("logger initialized", "level", logger.LevelName(verbosity), "json", jsonLogs)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	RootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON on stderr")

	RootCmd.AddCommand(RenderCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}
