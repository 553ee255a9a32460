package block

import (
	"strings"

	"github.com/teranos/jcodemodel/contract"
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
)

// Return is a return statement; Expr may be nil.
type Return struct {
	Expr expr.Expression
}

func (r *Return) State(f *format.Formatter) {
	f.Print("return")
	if r.Expr != nil {
		f.Print(" ").Generable(r.Expr)
	}
	f.Print(";").Newline()
}

// Throw is a throw statement.
type Throw struct {
	Expr expr.Expression
}

func (t *Throw) State(f *format.Formatter) {
	f.Print("throw ").Generable(t.Expr).Print(";").Newline()
}

// Label names a statement for labelled break and continue.
type Label struct {
	name string
}

func (l *Label) Name() string { return l.name }

func (l *Label) State(f *format.Formatter) {
	f.Print(l.name).Print(":").Newline()
}

// Break exits a loop or switch, optionally a labelled one.
type Break struct {
	Label *Label
}

func (s *Break) State(f *format.Formatter) { jump(f, "break", s.Label) }

// Continue skips to the next iteration, optionally of a labelled loop.
type Continue struct {
	Label *Label
}

func (s *Continue) State(f *format.Formatter) { jump(f, "continue", s.Label) }

func jump(f *format.Formatter, keyword string, l *Label) {
	f.Print(keyword)
	if l != nil {
		f.Print(" ").Print(l.name)
	}
	f.Print(";").Newline()
}

// Comment is a run of single-line comments.
type Comment struct {
	text strings.Builder
}

// Append adds text. Each line of the result becomes one // comment.
func (c *Comment) Append(text string) *Comment {
	c.text.WriteString(text)
	return c
}

func (c *Comment) Text() string { return c.text.String() }

func (c *Comment) State(f *format.Formatter) {
	for _, line := range strings.Split(c.text.String(), "\n") {
		f.Print("//")
		if line != "" {
			f.Print(" ").Print(line)
		}
		f.Newline()
	}
}

// Direct is source text inserted verbatim as a statement.
type Direct struct {
	Source string
}

func (d *Direct) State(f *format.Formatter) {
	for _, line := range strings.Split(d.Source, "\n") {
		f.Print(line).Newline()
	}
}

// Return adds a return statement. e may be nil.
func (b *Block) Return(e expr.Expression) *Return {
	r := &Return{Expr: e}
	b.addStatement(r)
	return r
}

func (b *Block) Throw(e expr.Expression) *Throw {
	t := &Throw{Expr: e}
	b.addStatement(t)
	return t
}

// Break adds a break statement. l may be nil.
func (b *Block) Break(l *Label) *Break {
	s := &Break{Label: l}
	b.addStatement(s)
	return s
}

// Continue adds a continue statement. l may be nil.
func (b *Block) Continue(l *Label) *Continue {
	s := &Continue{Label: l}
	b.addStatement(s)
	return s
}

// Label declares a label at the cursor.
func (b *Block) Label(name string) *Label {
	l := &Label{name: name}
	b.addStatement(l)
	return l
}

// AddComment adds a single-line comment, which may be extended with Append.
func (b *Block) AddComment(text string) *Comment {
	c := &Comment{}
	c.Append(text)
	b.addStatement(c)
	return c
}

// AddAnnotation places a contract overlay at the cursor.
func (b *Block) AddAnnotation(a *contract.Annotation) *contract.Statement {
	s := contract.NewStatement(a)
	b.addStatement(s)
	return s
}

// Direct inserts source as a statement without any checking. It is
// dangerous: the text bypasses the object model entirely, so nothing
// guarantees the output still parses.
func (b *Block) Direct(source string) *Direct {
	d := &Direct{Source: source}
	b.addStatement(d)
	return d
}
