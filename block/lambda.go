package block

import (
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// LambdaParam is a lambda parameter; Type is nil for an inferred type.
type LambdaParam struct {
	Type types.Ref
	Name string
}

// Generate prints the parameter's name so it can be used in the body.
func (p *LambdaParam) Generate(f *format.Formatter) { f.Print(p.Name) }

// Lambda is a lambda expression. A body holding a single raw expression
// prints inline, anything else as a braced block.
type Lambda struct {
	params []*LambdaParam
	body   *Block
}

// NewLambda returns a lambda with no parameters and an empty body.
func NewLambda() *Lambda { return &Lambda{body: New()} }

// Param adds an inferred-type parameter.
func (l *Lambda) Param(name string) *LambdaParam {
	return l.ParamTyped(nil, name)
}

// ParamTyped adds an explicitly typed parameter.
func (l *Lambda) ParamTyped(t types.Ref, name string) *LambdaParam {
	p := &LambdaParam{Type: t, Name: name}
	l.params = append(l.params, p)
	return p
}

func (l *Lambda) Params() []*LambdaParam { return append([]*LambdaParam(nil), l.params...) }

func (l *Lambda) Body() *Block { return l.body }

// Expr sets the body to a single expression.
func (l *Lambda) Expr(e expr.Expression) *Lambda {
	l.body.RemoveAll()
	l.body.AddRaw(e)
	return l
}

func (l *Lambda) Generate(f *format.Formatter) {
	parens := len(l.params) != 1 || l.params[0].Type != nil
	if parens {
		f.Print("(")
	}
	for i, p := range l.params {
		if i > 0 {
			f.Print(", ")
		}
		if p.Type != nil {
			f.Type(p.Type).Print(" ")
		}
		f.Print(p.Name)
	}
	if parens {
		f.Print(")")
	}
	f.Print(" -> ")
	if u := l.body.contents; len(u) == 1 && u[0].Kind == RawUnit {
		l.body.generateBody(f)
		return
	}
	f.Generable(l.body)
}
