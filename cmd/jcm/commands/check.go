package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/jcodemodel/config"
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/logger"
	"github.com/teranos/jcodemodel/manifest"
	"github.com/teranos/jcodemodel/resource"
)

// CheckCmd verifies rendered sources against a manifest
var CheckCmd = &cobra.Command{
	Use:   "check <manifest>",
	Short: "Check that rendered sources are up to date",
	Long: `Render a manifest in memory and compare it with the files in the
output directory. Differences are printed as line diffs.

Exit codes:
  0 - Sources are up to date
  1 - Sources are missing or out of date

Examples:
  jcm check api.yaml
  jcm check api.yaml -o src/main/java`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var checkOutput string

func init() {
	CheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Directory holding the rendered sources (overrides output.dir)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	opts, err := formatOptions(cfg)
	if err != nil {
		return err
	}
	dir := cfg.Output.Dir
	if checkOutput != "" {
		dir = checkOutput
	}

	path := args[0]
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	files, err := buildFiles(path, m)
	if err != nil {
		return err
	}
	mem := newMemWriter()
	if err := resource.Build(mem, files, opts...); err != nil {
		return err
	}

	stale, err := compareDir(dir, mem)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		if shows(cmd, logger.OutputResults) {
			pterm.Success.Printfln("%d files in %s are up to date", len(files), dir)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	for _, s := range stale {
		switch {
		case s.Missing:
			fmt.Fprintf(out, "missing: %s\n", s.Path)
		case shows(cmd, logger.OutputDiffs):
			fmt.Fprintf(out, "--- %s (on disk)\n+++ %s (rendered)\n%s", s.Path, s.Path, s.Diff)
		default:
			fmt.Fprintf(out, "differs: %s\n", s.Path)
		}
	}
	return errors.Newf("%d of %d files are out of date - run 'jcm render %s' to update", len(stale), len(files), path)
}
