package block

import (
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
)

// Switch is a switch statement with ordered cases and an optional default.
type Switch struct {
	test  expr.Expression
	cases []*Case
	def   *Case
}

// Case is one arm of a switch. Its body is indented but carries no braces.
type Case struct {
	label expr.Expression
	body  *Block
}

func newCase(label expr.Expression) *Case {
	return &Case{label: label, body: NewWith(false, true)}
}

// Label is nil for the default case.
func (c *Case) Label() expr.Expression { return c.label }
func (c *Case) Body() *Block           { return c.body }

func (c *Case) State(f *format.Formatter) {
	f.Indent()
	if c.label == nil {
		f.Print("default:").Newline()
	} else {
		f.Print("case ").Generable(c.label).Print(":").Newline()
	}
	f.Statement(c.body)
	f.Outdent()
}

func (s *Switch) Test() expr.Expression { return s.test }

// Case appends an arm matching label.
func (s *Switch) Case(label expr.Expression) *Case {
	c := newCase(label)
	s.cases = append(s.cases, c)
	return c
}

// Default returns the default arm, creating it on first use. It always
// prints after the labelled cases.
func (s *Switch) Default() *Case {
	if s.def == nil {
		s.def = newCase(nil)
	}
	return s.def
}

func (s *Switch) Cases() []*Case { return append([]*Case(nil), s.cases...) }

func (s *Switch) State(f *format.Formatter) {
	head(f, "switch", s.test)
	f.Print(" {").Newline()
	for _, c := range s.cases {
		f.Statement(c)
	}
	if s.def != nil {
		f.Statement(s.def)
	}
	f.Print("}").Newline()
}

func (b *Block) Switch(test expr.Expression) *Switch {
	s := &Switch{test: test}
	b.addStatement(s)
	return s
}
