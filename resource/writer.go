// Package resource writes rendered compilation units and static files into
// output sinks: a directory tree, a zip archive or a single stream.
package resource

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/teranos/jcodemodel/errors"
	"go.uber.org/zap"
)

// CodeWriter is an output sink for generated files. Every writer returned by
// Create must be closed before the next Create; Close releases the sink.
type CodeWriter interface {
	Create(name string) (io.WriteCloser, error)
	Close() error
}

// Option configures a code writer.
type Option func(*options)

type options struct {
	logger *zap.SugaredLogger
}

// WithLogger logs one debug event per written file.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// cleanName validates a slash-separated relative path.
func cleanName(name string) (string, error) {
	if name == "" {
		return "", errors.NewIllegalArgumentError("empty file name")
	}
	clean := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errors.WithHint(
			errors.NewIllegalArgumentError("file name %q escapes the output root", name),
			"use a path relative to the output root")
	}
	return clean, nil
}

// counted tracks bytes written to a file and logs them when it is closed.
type counted struct {
	w      io.Writer
	closer func() error
	name   string
	n      int64
	logger *zap.SugaredLogger
}

func (c *counted) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *counted) Close() error {
	var err error
	if c.closer != nil {
		err = c.closer()
	}
	if err == nil {
		c.logger.Debugw("wrote file", "name", c.name, "bytes", c.n)
	}
	return err
}

// DirWriter writes each file below a root directory, creating parent
// directories as needed.
type DirWriter struct {
	root string
	opts options
}

func NewDirWriter(root string, opts ...Option) *DirWriter {
	return &DirWriter{root: root, opts: buildOptions(opts)}
}

func (d *DirWriter) Root() string { return d.root }

func (d *DirWriter) Create(name string) (io.WriteCloser, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	p := filepath.Join(d.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", clean)
	}
	f, err := os.Create(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", p)
	}
	return &counted{w: f, closer: f.Close, name: clean, logger: d.opts.logger}, nil
}

func (d *DirWriter) Close() error { return nil }

// ZipWriter stores every file as an entry of a zip archive.
type ZipWriter struct {
	zw    *zip.Writer
	owned io.Closer
	opts  options
}

// NewZipWriter writes an archive to w. Closing the ZipWriter finishes the
// archive but leaves w open.
func NewZipWriter(w io.Writer, opts ...Option) *ZipWriter {
	return &ZipWriter{zw: zip.NewWriter(w), opts: buildOptions(opts)}
}

// CreateZipFile creates the archive file at p. Closing the ZipWriter closes
// the file too.
func CreateZipFile(p string, opts ...Option) (*ZipWriter, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", p)
	}
	f, err := os.Create(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create archive %s", p)
	}
	z := NewZipWriter(f, opts...)
	z.owned = f
	return z, nil
}

func (z *ZipWriter) Create(name string) (io.WriteCloser, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	w, err := z.zw.Create(clean)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add archive entry %s", clean)
	}
	return &counted{w: w, name: clean, logger: z.opts.logger}, nil
}

func (z *ZipWriter) Close() error {
	err := errors.Wrap(z.zw.Close(), "failed to finish archive")
	if z.owned != nil {
		err = errors.CombineErrors(err, z.owned.Close())
	}
	return err
}

// StreamWriter concatenates every file into one stream, each preceded by a
// "// file: <name>" header line.
type StreamWriter struct {
	w     io.Writer
	count int
	opts  options
}

func NewStreamWriter(w io.Writer, opts ...Option) *StreamWriter {
	return &StreamWriter{w: w, opts: buildOptions(opts)}
}

func (s *StreamWriter) Create(name string) (io.WriteCloser, error) {
	prefix := ""
	if s.count > 0 {
		prefix = "\n"
	}
	if _, err := fmt.Fprintf(s.w, "%s// file: %s\n", prefix, name); err != nil {
		return nil, errors.Wrapf(err, "failed to write header for %s", name)
	}
	s.count++
	return &counted{w: s.w, name: name, logger: s.opts.logger}, nil
}

func (s *StreamWriter) Close() error { return nil }
