package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/jcodemodel/config"
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/logger"
	"github.com/teranos/jcodemodel/manifest"
)

// RenderCmd renders a manifest to disk
var RenderCmd = &cobra.Command{
	Use:   "render <manifest>",
	Short: "Render a manifest into Java source files",
	Long: `Render every fragment of a manifest into Java source files.

Files go into the output directory (--output, or output.dir from jcm.toml)
unless an archive is requested with --archive or output.archive, in which
case a single zip file is written instead.

With --watch, jcm keeps running and re-renders whenever the manifest
changes. Rapid successive saves are coalesced (watch.debounce_ms).

Examples:
  jcm render api.yaml
  jcm render api.yaml -o src/main/java
  jcm render api.toml --archive gen.zip
  jcm render api.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderOutput  string
	renderArchive string
	renderWatch   bool
)

func init() {
	RenderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output directory (overrides output.dir)")
	RenderCmd.Flags().StringVar(&renderArchive, "archive", "", "Write a zip archive instead of a directory")
	RenderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render when the manifest changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	opts, err := formatOptions(cfg)
	if err != nil {
		return err
	}

	out := cfg.Output
	if renderOutput != "" {
		out.Dir = renderOutput
		out.Archive = ""
	}
	if renderArchive != "" {
		out.Archive = renderArchive
	}

	if shows(cmd, logger.OutputConfig) {
		pterm.Info.Printfln("Indent %q, type names %s", cfg.Format.Indent, cfg.Format.TypeNames)
	}

	path := args[0]
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	if err := renderAndReport(cmd, path, m, out, opts); err != nil {
		return err
	}

	if !renderWatch {
		return nil
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	w, err := manifest.NewWatcher(path, debounce, logger.Named("watch"))
	if err != nil {
		return err
	}
	defer w.Stop()

	w.OnChange(func(m *manifest.Manifest) error {
		err := renderAndReport(cmd, path, m, out, opts)
		if err != nil && shows(cmd, logger.OutputErrors) {
			pterm.Error.Printfln("Render failed: %v", err)
			if hint := errors.FlattenHints(err); hint != "" {
				pterm.Info.Printfln("Hint: %s", hint)
			}
		}
		return err
	})
	w.Start()

	pterm.Info.Printfln("Watching %s (Ctrl+C to stop)", path)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	pterm.Info.Println("Stopped watching")
	return nil
}

func renderAndReport(cmd *cobra.Command, path string, m *manifest.Manifest, out config.OutputConfig, opts []format.Option) error {
	start := time.Now()
	files, dest, err := renderManifest(path, m, out, opts)
	if err != nil {
		return err
	}
	if shows(cmd, logger.OutputFiles) {
		for _, f := range files {
			pterm.Printfln("  %s", f.Path())
		}
	}
	if shows(cmd, logger.OutputResults) {
		pterm.Success.Printfln("Rendered %d files to %s", len(files), dest)
	}
	if shows(cmd, logger.OutputTiming) {
		pterm.Info.Printfln("Render took %s", time.Since(start).Round(time.Millisecond))
	}
	return nil
}
