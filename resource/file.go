package resource

import (
	"io"
	"io/fs"
	"reflect"
	"strings"

	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/format"
	"go.uber.org/zap"
)

// File is one output of a build.
type File interface {
	// Path is the slash-separated name below the output root.
	Path() string
	// IsResource reports whether the file belongs with resources rather
	// than sources.
	IsResource() bool
	// Emit writes the file's content to w.
	Emit(w io.Writer, opts ...format.Option) error
}

// SourceFile is a compilation unit rendered through a Formatter.
type SourceFile struct {
	Name string
	Unit format.Generable
}

func (s SourceFile) Path() string     { return s.Name }
func (s SourceFile) IsResource() bool { return false }

func (s SourceFile) Emit(w io.Writer, opts ...format.Option) error {
	return errors.Wrapf(format.WriteTo(w, s.Unit, opts...), "failed to render %s", s.Name)
}

// StaticFile copies an existing file verbatim.
type StaticFile struct {
	FS     fs.FS
	Source string
	Target string
	// Resource is set by NewStaticFile for anything that is not a .java
	// source.
	Resource bool
}

// NewStaticFile copies name from fsys to the same path in the output.
func NewStaticFile(fsys fs.FS, name string) StaticFile {
	return StaticFile{
		FS:       fsys,
		Source:   name,
		Target:   name,
		Resource: !strings.HasSuffix(name, ".java"),
	}
}

func (s StaticFile) Path() string     { return s.Target }
func (s StaticFile) IsResource() bool { return s.Resource }

// Emit drains the source into w. The source is closed on every path.
func (s StaticFile) Emit(w io.Writer, _ ...format.Option) (err error) {
	if s.FS == nil {
		return errors.NewIllegalArgumentError("static file %s has no source filesystem", s.Source)
	}
	in, err := s.FS.Open(s.Source)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", s.Source)
	}
	defer func() {
		err = errors.CombineErrors(err, errors.Wrapf(in.Close(), "failed to close %s", s.Source))
	}()
	if _, err := io.Copy(w, in); err != nil {
		return errors.Wrapf(err, "failed to copy %s", s.Source)
	}
	return nil
}

// Builder writes files into their sinks.
type Builder struct {
	// Source receives every file, and resources too when Resource is nil.
	Source   CodeWriter
	Resource CodeWriter
	Format   []format.Option
	Logger   *zap.SugaredLogger
}

// Build writes all files and closes the sinks, also when a file fails.
// Files after a failure are skipped.
func (b *Builder) Build(files ...File) (err error) {
	if b.Source == nil {
		err = errors.NewIllegalArgumentError("builder has no source writer")
		if b.Resource != nil {
			err = errors.CombineErrors(err, errors.Wrap(b.Resource.Close(), "failed to close resource writer"))
		}
		return err
	}
	log := b.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	defer func() {
		err = errors.CombineErrors(err, errors.Wrap(b.Source.Close(), "failed to close source writer"))
		if b.Resource != nil && !sameWriter(b.Source, b.Resource) {
			err = errors.CombineErrors(err, errors.Wrap(b.Resource.Close(), "failed to close resource writer"))
		}
	}()

	for _, f := range files {
		cw := b.Source
		if f.IsResource() && b.Resource != nil {
			cw = b.Resource
		}
		if err := write(cw, f, b.Format); err != nil {
			return err
		}
	}
	log.Debugw("build finished", "files", len(files))
	return nil
}

// sameWriter reports whether a and b are the same sink. Writers whose
// values cannot be compared are treated as distinct.
func sameWriter(a, b CodeWriter) bool {
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

func write(cw CodeWriter, f File, opts []format.Option) error {
	w, err := cw.Create(f.Path())
	if err != nil {
		return err
	}
	emitErr := f.Emit(w, opts...)
	closeErr := errors.Wrapf(w.Close(), "failed to close %s", f.Path())
	return errors.CombineErrors(emitErr, closeErr)
}

// Build writes files into cw and closes it.
func Build(cw CodeWriter, files []File, opts ...format.Option) error {
	b := &Builder{Source: cw, Format: opts}
	return b.Build(files...)
}
