package block

import (
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// DefaultCatchParam names the exception variable when none is given.
const DefaultCatchParam = "_x"

// TryBlock is a try statement with optional resources, catch clauses and a
// finally block.
type TryBlock struct {
	resources []*expr.Var
	body      *Block
	catches   []*CatchBlock
	finally   *Block
}

// CatchBlock handles one or more exception types.
type CatchBlock struct {
	exceptions []types.Ref
	param      *expr.Var
	body       *Block
}

// With declares a try-with-resources variable.
func (t *TryBlock) With(mods types.Mods, typ types.Ref, name string, init expr.Expression) *expr.Var {
	v := expr.NewVar(mods, typ, name, init)
	t.resources = append(t.resources, v)
	return v
}

func (t *TryBlock) Body() *Block { return t.body }

// Catch adds a handler for exception.
func (t *TryBlock) Catch(exception types.Ref) *CatchBlock {
	c := &CatchBlock{
		exceptions: []types.Ref{exception},
		body:       New(),
	}
	c.param = expr.NewVar(types.None, exception, DefaultCatchParam, nil)
	t.catches = append(t.catches, c)
	return c
}

// Finally returns the finally block, creating it on first use.
func (t *TryBlock) Finally() *Block {
	if t.finally == nil {
		t.finally = New()
	}
	return t.finally
}

func (t *TryBlock) State(f *format.Formatter) {
	f.Print("try ")
	if len(t.resources) > 0 {
		f.Print("(")
		for i, r := range t.resources {
			if i > 0 {
				f.Print("; ")
			}
			r.Bind(f)
		}
		f.Print(") ")
	}
	f.Generable(t.body)
	for _, c := range t.catches {
		f.Print(" ").Generable(c)
	}
	if t.finally != nil {
		f.Print(" finally ").Generable(t.finally)
	}
	f.Newline()
}

// Or widens the handler to a multi-catch.
func (c *CatchBlock) Or(exception types.Ref) *CatchBlock {
	c.exceptions = append(c.exceptions, exception)
	return c
}

// Param renames the exception variable and returns it.
func (c *CatchBlock) Param(name string) *expr.Var {
	c.param = expr.NewVar(c.param.Mods(), c.exceptions[0], name, nil)
	return c.param
}

func (c *CatchBlock) Body() *Block { return c.body }

func (c *CatchBlock) Generate(f *format.Formatter) {
	f.Print("catch (")
	if m := c.param.Mods(); m != types.None {
		f.Print(m.String()).Print(" ")
	}
	for i, e := range c.exceptions {
		if i > 0 {
			f.Print(" | ")
		}
		f.Type(e)
	}
	f.Print(" ").Print(c.param.Name()).Print(") ").Generable(c.body)
}

func (b *Block) Try() *TryBlock {
	t := &TryBlock{body: New()}
	b.addStatement(t)
	return t
}
