package format

import (
	"io"
	"strings"
)

// Render prints g into a string.
func Render(g Generable, opts ...Option) (string, error) {
	var sb strings.Builder
	f := New(&sb, opts...)
	f.Generable(g)
	f.logger.Debugw("rendered unit", "bytes", f.written)
	return sb.String(), f.Err()
}

// RenderStatement prints s, in statement position, into a string.
func RenderStatement(s Statement, opts ...Option) (string, error) {
	var sb strings.Builder
	f := New(&sb, opts...)
	f.Statement(s)
	f.logger.Debugw("rendered statement", "bytes", f.written)
	return sb.String(), f.Err()
}

// WriteTo prints g to w.
func WriteTo(w io.Writer, g Generable, opts ...Option) error {
	f := New(w, opts...)
	f.Generable(g)
	f.logger.Debugw("rendered unit", "bytes", f.written)
	return f.Err()
}
