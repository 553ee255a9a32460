package contract

import (
	"strings"

	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
)

const (
	overlayOpen  = "/*"
	overlayClose = "@*/"
	linePrefix   = " @ "
)

// ClauseKind is the shape of a keyword's payload.
type ClauseKind int

const (
	// ExpressionClause carries an ordered list of expressions, rendered one
	// line per expression. With no expressions the keyword prints alone.
	ExpressionClause ClauseKind = iota
	// AttributeClause carries ordered key/value attributes on one line.
	AttributeClause
)

func (k ClauseKind) String() string {
	if k == AttributeClause {
		return "attributes"
	}
	return "expressions"
}

// Attribute is a clause attribute; a nil Value prints the key alone.
type Attribute struct {
	Key   string
	Value *string
}

type clause struct {
	keyword string
	kind    ClauseKind
	exprs   []Expr
	attrs   []Attribute
}

// Annotation is the overlay attached to a statement position: free text plus
// a registry of keyword clauses kept in registration order.
type Annotation struct {
	text    strings.Builder
	clauses []*clause
}

// NewAnnotation returns an empty overlay.
func NewAnnotation() *Annotation { return &Annotation{} }

// Append adds free text. Newlines split it into separate overlay lines.
func (a *Annotation) Append(text string) *Annotation {
	a.text.WriteString(text)
	return a
}

// Text returns the accumulated free text.
func (a *Annotation) Text() string { return a.text.String() }

// IsEmpty reports whether the overlay has neither text nor keywords.
func (a *Annotation) IsEmpty() bool { return a.text.Len() == 0 && len(a.clauses) == 0 }

// Keywords lists the registered keywords in registration order.
func (a *Annotation) Keywords() []string {
	out := make([]string, len(a.clauses))
	for i, c := range a.clauses {
		out[i] = c.keyword
	}
	return out
}

// Kind returns the shape registered under keyword.
func (a *Annotation) Kind(keyword string) (ClauseKind, bool) {
	if c := a.lookup(keyword); c != nil {
		return c.kind, true
	}
	return 0, false
}

// Exprs returns a copy of an expression clause's list.
func (a *Annotation) Exprs(keyword string) []Expr {
	c := a.lookup(keyword)
	if c == nil || c.kind != ExpressionClause {
		return nil
	}
	return append([]Expr(nil), c.exprs...)
}

// Attributes returns a copy of an attribute clause's pairs.
func (a *Annotation) Attributes(keyword string) []Attribute {
	c := a.lookup(keyword)
	if c == nil || c.kind != AttributeClause {
		return nil
	}
	return append([]Attribute(nil), c.attrs...)
}

func (a *Annotation) lookup(keyword string) *clause {
	for _, c := range a.clauses {
		if c.keyword == keyword {
			return c
		}
	}
	return nil
}

func (a *Annotation) register(keyword string, kind ClauseKind) (*clause, error) {
	if keyword == "" {
		return nil, errors.NewIllegalArgumentError("empty clause keyword")
	}
	c := a.lookup(keyword)
	if c == nil {
		c = &clause{keyword: keyword, kind: kind}
		a.clauses = append(a.clauses, c)
		return c, nil
	}
	if c.kind != kind {
		return nil, errors.WithHintf(
			errors.NewIllegalArgumentError("keyword %q already holds %s, cannot add %s", keyword, c.kind, kind),
			"remove the keyword first with RemoveKeyword(%q)", keyword)
	}
	return c, nil
}

// AddClause appends expressions under keyword, registering it on first use.
func (a *Annotation) AddClause(keyword string, exprs ...Expr) error {
	c, err := a.register(keyword, ExpressionClause)
	if err != nil {
		return err
	}
	for _, e := range exprs {
		if e != nil {
			c.exprs = append(c.exprs, e)
		}
	}
	return nil
}

// AddKeyword registers keyword with no payload. It prints on its own line.
func (a *Annotation) AddKeyword(keyword string) error {
	return a.AddClause(keyword)
}

// AddRequires adds a precondition.
func (a *Annotation) AddRequires(e Expr) error { return a.AddClause("requires", e) }

// AddEnsures adds a postcondition.
func (a *Annotation) AddEnsures(e Expr) error { return a.AddClause("ensures", e) }

// AddAttribute sets attr on an attribute clause. Setting an existing key
// replaces its value in place.
func (a *Annotation) AddAttribute(keyword, attr string, value *string) error {
	c, err := a.register(keyword, AttributeClause)
	if err != nil {
		return err
	}
	for i := range c.attrs {
		if c.attrs[i].Key == attr {
			c.attrs[i].Value = value
			return nil
		}
	}
	c.attrs = append(c.attrs, Attribute{Key: attr, Value: value})
	return nil
}

// RemoveKeyword drops keyword and its payload.
func (a *Annotation) RemoveKeyword(keyword string) bool {
	for i, c := range a.clauses {
		if c.keyword == keyword {
			a.clauses = append(a.clauses[:i], a.clauses[i+1:]...)
			return true
		}
	}
	return false
}

// Generate writes the overlay. An empty overlay writes nothing.
func (a *Annotation) Generate(f *format.Formatter) {
	if a.IsEmpty() {
		return
	}
	f.Print(overlayOpen).Newline()
	if a.text.Len() > 0 {
		for _, line := range strings.Split(a.text.String(), "\n") {
			f.Print(linePrefix).Print(escape(line)).Newline()
		}
		if len(a.clauses) > 0 {
			f.Print(linePrefix).Newline()
		}
	}
	for _, c := range a.clauses {
		switch c.kind {
		case ExpressionClause:
			if len(c.exprs) == 0 {
				f.Print(linePrefix).Print(c.keyword).Newline()
			}
			for _, e := range c.exprs {
				f.Print(linePrefix).Print(c.keyword).Print(" ")
				e.render(f)
				f.Newline()
			}
		case AttributeClause:
			f.Print(linePrefix).Print(c.keyword)
			for _, attr := range c.attrs {
				f.Print(" ").Print(attr.Key)
				if attr.Value != nil {
					f.Print("=").Generable(expr.Str(*attr.Value))
				}
			}
			f.Newline()
		}
	}
	f.Print(overlayClose).Newline()
}

// escape keeps free text from terminating the comment early.
func escape(s string) string {
	return strings.ReplaceAll(s, "*/", "*<!---->/")
}

// Statement places an annotation at a block position.
type Statement struct {
	annotation *Annotation
}

// NewStatement wraps a.
func NewStatement(a *Annotation) *Statement { return &Statement{annotation: a} }

// Annotation returns the wrapped overlay, which stays mutable until render.
func (s *Statement) Annotation() *Annotation { return s.annotation }

func (s *Statement) State(f *format.Formatter) { f.Generable(s.annotation) }
