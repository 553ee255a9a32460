package block

import (
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// head prints "keyword (test)" without doubling parentheses the test
// already carries.
func head(f *format.Formatter, keyword string, test expr.Expression) {
	f.Print(keyword).Print(" ")
	if expr.Parenthesized(test) {
		f.Generable(test)
		return
	}
	f.Print("(").Generable(test).Print(")")
}

// Conditional is an if statement with optional else branch.
type Conditional struct {
	test  expr.Expression
	then  *Block
	elseB *Block
}

func newConditional(test expr.Expression) *Conditional {
	return &Conditional{test: test, then: New()}
}

func (c *Conditional) Test() expr.Expression { return c.test }

// Then is the block run when the test holds.
func (c *Conditional) Then() *Block { return c.then }

// Else returns the else block, creating it on first use.
func (c *Conditional) Else() *Block {
	if c.elseB == nil {
		c.elseB = New()
	}
	return c.elseB
}

// ElseIf chains a conditional in the else branch.
func (c *Conditional) ElseIf(test expr.Expression) *Conditional {
	return c.Else().If(test)
}

// State prints the statement. A literal true or false test collapses to the
// body of the branch that would run.
func (c *Conditional) State(f *format.Formatter) {
	switch c.test {
	case expr.True:
		c.then.generateBody(f)
		return
	case expr.False:
		if c.elseB != nil {
			c.elseB.generateBody(f)
		}
		return
	}

	head(f, "if", c.test)
	f.Print(" ").Generable(c.then)
	if c.elseB != nil && !c.elseB.IsEmpty() {
		if chained, ok := c.elseB.soleConditional(); ok {
			f.Print(" else ").Statement(chained)
			return
		}
		f.Print(" else ").Generable(c.elseB)
	}
	f.Newline()
}

// soleConditional reports whether b holds nothing but an if statement, which
// then prints as "else if".
func (b *Block) soleConditional() (*Conditional, bool) {
	if b.virtual || !b.bracesRequired || len(b.contents) != 1 || b.contents[0].Kind != StatementUnit {
		return nil, false
	}
	c, ok := b.contents[0].Statement.(*Conditional)
	return c, ok
}

// ForLoop is a classic three-part for statement.
type ForLoop struct {
	inits   []format.Generable
	test    expr.Expression
	updates []expr.Expression
	body    *Block
}

// Init declares a loop variable.
func (l *ForLoop) Init(mods types.Mods, t types.Ref, name string, e expr.Expression) *expr.Var {
	v := expr.NewVar(mods, t, name, e)
	l.inits = append(l.inits, format.GenerableFunc(v.Bind))
	return v
}

// InitAssign initialises an existing variable.
func (l *ForLoop) InitAssign(lhs expr.AssignmentTarget, e expr.Expression) *ForLoop {
	l.inits = append(l.inits, expr.Assign(lhs, e))
	return l
}

func (l *ForLoop) Test(e expr.Expression) *ForLoop {
	l.test = e
	return l
}

func (l *ForLoop) Update(e expr.Expression) *ForLoop {
	l.updates = append(l.updates, e)
	return l
}

func (l *ForLoop) Body() *Block { return l.body }

func (l *ForLoop) State(f *format.Formatter) {
	f.Print("for (")
	for i, g := range l.inits {
		if i > 0 {
			f.Print(", ")
		}
		f.Generable(g)
	}
	f.Print(";")
	if l.test != nil {
		f.Print(" ").Generable(l.test)
	}
	f.Print(";")
	for i, u := range l.updates {
		if i == 0 {
			f.Print(" ")
		} else {
			f.Print(", ")
		}
		f.Generable(u)
	}
	f.Print(") ")
	f.Statement(l.body)
}

// WhileLoop is a while statement.
type WhileLoop struct {
	test expr.Expression
	body *Block
}

func (l *WhileLoop) Test() expr.Expression { return l.test }
func (l *WhileLoop) Body() *Block          { return l.body }

func (l *WhileLoop) State(f *format.Formatter) {
	head(f, "while", l.test)
	f.Print(" ").Statement(l.body)
}

// DoLoop is a do-while statement.
type DoLoop struct {
	test expr.Expression
	body *Block
}

func (l *DoLoop) Test() expr.Expression { return l.test }
func (l *DoLoop) Body() *Block          { return l.body }

func (l *DoLoop) State(f *format.Formatter) {
	f.Print("do ").Generable(l.body).Print(" ")
	head(f, "while", l.test)
	f.Print(";").Newline()
}

// ForEach is an enhanced for statement over a collection or array.
type ForEach struct {
	v          *expr.Var
	collection expr.Expression
	body       *Block
}

// Var is the loop variable, usable inside the body.
func (l *ForEach) Var() *expr.Var { return l.v }
func (l *ForEach) Body() *Block   { return l.body }

func (l *ForEach) State(f *format.Formatter) {
	f.Print("for (")
	l.v.Bind(f)
	f.Print(" : ").Generable(l.collection).Print(") ")
	f.Statement(l.body)
}

// SynchronizedBlock runs its body holding a monitor.
type SynchronizedBlock struct {
	lock expr.Expression
	body *Block
}

func (s *SynchronizedBlock) Body() *Block { return s.body }

func (s *SynchronizedBlock) State(f *format.Formatter) {
	head(f, "synchronized", s.lock)
	f.Print(" ").Statement(s.body)
}

// If adds a conditional with an empty then block.
func (b *Block) If(test expr.Expression) *Conditional {
	c := newConditional(test)
	b.addStatement(c)
	return c
}

// IfThen adds a conditional whose then block holds then.
func (b *Block) IfThen(test expr.Expression, then format.Statement) *Conditional {
	c := b.If(test)
	c.Then().Add(then)
	return c
}

// IfThenElse adds a conditional with both branches filled.
func (b *Block) IfThenElse(test expr.Expression, then, els format.Statement) *Conditional {
	c := b.IfThen(test, then)
	c.Else().Add(els)
	return c
}

func (b *Block) For() *ForLoop {
	l := &ForLoop{body: New()}
	b.addStatement(l)
	return l
}

func (b *Block) While(test expr.Expression) *WhileLoop {
	l := &WhileLoop{test: test, body: New()}
	b.addStatement(l)
	return l
}

func (b *Block) Do(test expr.Expression) *DoLoop {
	l := &DoLoop{test: test, body: New()}
	b.addStatement(l)
	return l
}

// ForEach iterates name of type t over collection.
func (b *Block) ForEach(t types.Ref, name string, collection expr.Expression) *ForEach {
	l := &ForEach{v: expr.NewVar(types.None, t, name, nil), collection: collection, body: New()}
	b.addStatement(l)
	return l
}

func (b *Block) Synchronized(lock expr.Expression) *SynchronizedBlock {
	s := &SynchronizedBlock{lock: lock, body: New()}
	b.addStatement(s)
	return s
}
