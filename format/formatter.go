// Package format renders a code model to text.
//
// A Formatter is the output sink of a single rendering pass. Nodes drive it
// through four primitives (Print, Newline, Indent, Outdent) and dispatch their
// children through Generable, Statement and Declaration. Indentation is one
// nesting counter shared by the whole traversal and is emitted lazily, at the
// first Print of each line, so blank lines carry no trailing whitespace.
//
// Write errors are sticky: the first one stops all further output and is
// reported by Err.
package format

import (
	"io"
	"strings"

	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/types"
	"go.uber.org/zap"
)

// DefaultIndent is the indentation unit used when none is configured.
const DefaultIndent = "    "

// Generable is a node that can print itself, typically an expression.
type Generable interface {
	Generate(f *Formatter)
}

// Statement is a node that prints itself as a complete statement and
// terminates its own line.
type Statement interface {
	State(f *Formatter)
}

// Declaration is a node that introduces a name, such as a local variable.
type Declaration interface {
	Declare(f *Formatter)
}

// Formatter is the output sink of a rendering pass.
type Formatter struct {
	w           io.Writer
	indentUnit  string
	level       int
	atLineStart bool
	namer       TypeNamer
	logger      *zap.SugaredLogger
	written     int
	err         error
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithIndent sets the indentation unit printed once per nesting level.
func WithIndent(unit string) Option {
	return func(f *Formatter) {
		f.indentUnit = unit
	}
}

// WithTypeNamer sets how type references are printed.
func WithTypeNamer(n TypeNamer) Option {
	return func(f *Formatter) {
		if n != nil {
			f.namer = n
		}
	}
}

// WithLogger attaches a logger for render diagnostics.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Formatter writing to w.
func New(w io.Writer, opts ...Option) *Formatter {
	f := &Formatter{
		w:           w,
		indentUnit:  DefaultIndent,
		atLineStart: true,
		namer:       FullNames,
		logger:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Print writes text, preceded by the current indentation when it starts a line.
func (f *Formatter) Print(s string) *Formatter {
	if f.err != nil || s == "" {
		return f
	}
	if f.atLineStart {
		f.write(strings.Repeat(f.indentUnit, f.level))
		f.atLineStart = false
	}
	f.write(s)
	return f
}

// Newline terminates the current line.
func (f *Formatter) Newline() *Formatter {
	if f.err != nil {
		return f
	}
	f.write("\n")
	f.atLineStart = true
	return f
}

// Indent increases the nesting level.
func (f *Formatter) Indent() *Formatter {
	f.level++
	return f
}

// Outdent decreases the nesting level. Going below zero means a node
// outdented more than it indented; the pass is failed with an assertion error.
func (f *Formatter) Outdent() *Formatter {
	if f.level == 0 {
		if f.err == nil {
			f.err = errors.AssertionFailedf("outdent below nesting level zero")
		}
		return f
	}
	f.level--
	return f
}

// Generable prints a node in expression position.
func (f *Formatter) Generable(g Generable) *Formatter {
	if f.err == nil {
		g.Generate(f)
	}
	return f
}

// Statement prints a node in statement position.
func (f *Formatter) Statement(s Statement) *Formatter {
	if f.err == nil {
		s.State(f)
	}
	return f
}

// Declaration prints a declaring node.
func (f *Formatter) Declaration(d Declaration) *Formatter {
	if f.err == nil {
		d.Declare(f)
	}
	return f
}

// Type prints a type reference through the configured TypeNamer.
func (f *Formatter) Type(t types.Ref) *Formatter {
	return f.Print(f.namer.TypeName(t))
}

// Level is the current nesting level.
func (f *Formatter) Level() int { return f.level }

// AtLineStart reports whether nothing has been printed on the current line.
func (f *Formatter) AtLineStart() bool { return f.atLineStart }

// Written is the number of bytes written so far.
func (f *Formatter) Written() int { return f.written }

// Logger returns the formatter's logger.
func (f *Formatter) Logger() *zap.SugaredLogger { return f.logger }

// Err returns the first error met during the pass.
func (f *Formatter) Err() error { return f.err }

func (f *Formatter) write(s string) {
	if s == "" {
		return
	}
	n, err := io.WriteString(f.w, s)
	f.written += n
	if err != nil {
		f.err = errors.Wrap(err, "write rendered output")
	}
}

// GenerableFunc adapts a function to Generable.
type GenerableFunc func(f *Formatter)

func (fn GenerableFunc) Generate(f *Formatter) { fn(f) }

// StatementFunc adapts a function to Statement.
type StatementFunc func(f *Formatter)

func (fn StatementFunc) State(f *Formatter) { fn(f) }
