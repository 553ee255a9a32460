package commands

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/teranos/jcodemodel/config"
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/logger"
	"github.com/teranos/jcodemodel/manifest"
	"github.com/teranos/jcodemodel/resource"
)

// formatOptions turns the format section of cfg into formatter options.
func formatOptions(cfg *config.Config) ([]format.Option, error) {
	namer, ok := format.NamerFor(cfg.Format.TypeNames)
	if !ok {
		return nil, errors.NewIllegalArgumentError("unknown type name mode %q", cfg.Format.TypeNames)
	}
	return []format.Option{
		format.WithIndent(cfg.Format.Indent),
		format.WithTypeNamer(namer),
		format.WithLogger(logger.Named("format")),
	}, nil
}

// buildFiles builds m, resolving static entries next to the manifest at path.
func buildFiles(path string, m *manifest.Manifest) ([]resource.File, error) {
	return manifest.Build(m,
		manifest.WithStaticFS(os.DirFS(filepath.Dir(path))),
		manifest.WithLogger(logger.Named("manifest")),
	)
}

// sinkFor opens the writer selected by out: the archive when set, the
// directory otherwise.
func sinkFor(out config.OutputConfig) (resource.CodeWriter, string, error) {
	log := resource.WithLogger(logger.Named("resource"))
	if out.Archive != "" {
		zw, err := resource.CreateZipFile(out.Archive, log)
		if err != nil {
			return nil, "", err
		}
		return zw, out.Archive, nil
	}
	return resource.NewDirWriter(out.Dir, log), out.Dir, nil
}

// renderManifest builds m and writes it into the sink selected by out. It
// returns the files written and where they went.
func renderManifest(path string, m *manifest.Manifest, out config.OutputConfig, opts []format.Option) ([]resource.File, string, error) {
	files, err := buildFiles(path, m)
	if err != nil {
		return nil, "", err
	}
	cw, dest, err := sinkFor(out)
	if err != nil {
		return nil, "", err
	}
	b := &resource.Builder{Source: cw, Format: opts, Logger: logger.Named("resource")}
	if err := b.Build(files...); err != nil {
		return nil, "", errors.Wrapf(err, "failed to write %s", dest)
	}
	return files, dest, nil
}

// shows reports whether output of category c is enabled by the -v count.
func shows(cmd *cobra.Command, c logger.OutputCategory) bool {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	return logger.ShouldOutput(verbosity, c)
}

// memWriter keeps rendered files in memory, in creation order.
type memWriter struct {
	names []string
	files map[string]*bytes.Buffer
}

func newMemWriter() *memWriter {
	return &memWriter{files: make(map[string]*bytes.Buffer)}
}

type memFile struct{ *bytes.Buffer }

func (memFile) Close() error { return nil }

func (m *memWriter) Create(name string) (io.WriteCloser, error) {
	buf, ok := m.files[name]
	if !ok {
		buf = new(bytes.Buffer)
		m.files[name] = buf
		m.names = append(m.names, name)
	}
	buf.Reset()
	return memFile{buf}, nil
}

func (m *memWriter) Close() error { return nil }

// staleFile is a rendered file whose on-disk copy differs.
type staleFile struct {
	Path    string
	Missing bool
	Diff    string
}

// compareDir reports every file in mem that is missing from dir or differs
// from its copy there.
func compareDir(dir string, mem *memWriter) ([]staleFile, error) {
	var stale []staleFile
	for _, name := range mem.names {
		want := mem.files[name].String()
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, staleFile{Path: name, Missing: true})
			continue
		case err != nil:
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		if got := string(data); got != want {
			stale = append(stale, staleFile{Path: name, Diff: lineDiff(got, want)})
		}
	}
	return stale, nil
}

// lineDiff renders a line-level diff from before to after. Removed lines are
// prefixed with "- ", added lines with "+ " and unchanged lines with two
// spaces.
func lineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
