package expr

import (
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// Unary is a prefix operator applied to one operand, printed as (op x).
type Unary struct {
	op      string
	operand Expression
}

func (u *Unary) Op() string          { return u.op }
func (u *Unary) Operand() Expression { return u.operand }

func (u *Unary) Generate(f *format.Formatter) {
	f.Print("(").Print(u.op).Generable(u.operand).Print(")")
}

// Tight is an increment or decrement, printed without parentheses. It is
// also a statement.
type Tight struct {
	op      string
	operand Expression
	postfix bool
}

func (t *Tight) Op() string          { return t.op }
func (t *Tight) Operand() Expression { return t.operand }
func (t *Tight) Postfix() bool       { return t.postfix }

func (t *Tight) Generate(f *format.Formatter) {
	if t.postfix {
		f.Generable(t.operand).Print(t.op)
		return
	}
	f.Print(t.op).Generable(t.operand)
}

func (t *Tight) State(f *format.Formatter) {
	f.Generable(t).Print(";").Newline()
}

// Binary is an infix operator, printed as (left op right).
type Binary struct {
	op    string
	left  Expression
	right format.Generable
}

func (b *Binary) Op() string              { return b.op }
func (b *Binary) Left() Expression        { return b.left }
func (b *Binary) Right() format.Generable { return b.right }

func (b *Binary) Generate(f *format.Formatter) {
	f.Print("(").Generable(b.left).Print(" ").Print(b.op).Print(" ").Generable(b.right).Print(")")
}

func unary(op string, e Expression) *Unary { return &Unary{op: op, operand: e} }

func binary(l Expression, op string, r Expression) *Binary {
	return &Binary{op: op, left: l, right: r}
}

// Neg is arithmetic negation.
func Neg(e Expression) Expression { return unary("-", e) }

// Not is logical negation; negating a boolean literal folds to the other literal.
func Not(e Expression) Expression {
	switch e {
	case True:
		return False
	case False:
		return True
	}
	return unary("!", e)
}

// Complement is bitwise complement.
func Complement(e Expression) Expression { return unary("~", e) }

// Incr is post-increment (x++).
func Incr(e Expression) *Tight { return &Tight{op: "++", operand: e, postfix: true} }

// Decr is post-decrement (x--).
func Decr(e Expression) *Tight { return &Tight{op: "--", operand: e, postfix: true} }

// PreIncr is pre-increment (++x).
func PreIncr(e Expression) *Tight { return &Tight{op: "++", operand: e} }

// PreDecr is pre-decrement (--x).
func PreDecr(e Expression) *Tight { return &Tight{op: "--", operand: e} }

func Plus(l, r Expression) Expression  { return binary(l, "+", r) }
func Minus(l, r Expression) Expression { return binary(l, "-", r) }
func Mul(l, r Expression) Expression   { return binary(l, "*", r) }
func Div(l, r Expression) Expression   { return binary(l, "/", r) }
func Mod(l, r Expression) Expression   { return binary(l, "%", r) }
func Shl(l, r Expression) Expression   { return binary(l, "<<", r) }
func Shr(l, r Expression) Expression   { return binary(l, ">>", r) }
func Shrz(l, r Expression) Expression  { return binary(l, ">>>", r) }
func Band(l, r Expression) Expression  { return binary(l, "&", r) }
func Bor(l, r Expression) Expression   { return binary(l, "|", r) }
func Xor(l, r Expression) Expression   { return binary(l, "^", r) }
func Lt(l, r Expression) Expression    { return binary(l, "<", r) }
func Lte(l, r Expression) Expression   { return binary(l, "<=", r) }
func Gt(l, r Expression) Expression    { return binary(l, ">", r) }
func Gte(l, r Expression) Expression   { return binary(l, ">=", r) }
func Eq(l, r Expression) Expression    { return binary(l, "==", r) }
func Ne(l, r Expression) Expression    { return binary(l, "!=", r) }

// Cand is conditional and (&&). Literal operands short-circuit.
func Cand(l, r Expression) Expression {
	switch {
	case l == True:
		return r
	case r == True:
		return l
	case l == False:
		return l
	case r == False:
		return r
	}
	return binary(l, "&&", r)
}

// Cor is conditional or (||). Literal operands short-circuit.
func Cor(l, r Expression) Expression {
	switch {
	case l == True:
		return l
	case r == True:
		return r
	case l == False:
		return r
	case r == False:
		return l
	}
	return binary(l, "||", r)
}

// InstanceOf tests e against a type.
func InstanceOf(e Expression, t types.Ref) Expression {
	return &Binary{op: "instanceof", left: e, right: typeName{t}}
}

func Lt0(e Expression) Expression    { return Lt(e, Int(0)) }
func Lte0(e Expression) Expression   { return Lte(e, Int(0)) }
func Gt0(e Expression) Expression    { return Gt(e, Int(0)) }
func Gte0(e Expression) Expression   { return Gte(e, Int(0)) }
func Eq0(e Expression) Expression    { return Eq(e, Int(0)) }
func Ne0(e Expression) Expression    { return Ne(e, Int(0)) }
func EqNull(e Expression) Expression { return Eq(e, Null) }
func NeNull(e Expression) Expression { return Ne(e, Null) }

// Cast converts e to type t: ((t) e).
func Cast(t types.Ref, e Expression) Expression { return &cast{typ: t, operand: e} }

type cast struct {
	typ     types.Ref
	operand Expression
}

func (c *cast) Generate(f *format.Formatter) {
	f.Print("((").Type(c.typ).Print(") ").Generable(c.operand).Print(")")
}

// Cond is the ternary operator: (test ? a : b).
func Cond(test, a, b Expression) Expression { return &ternary{test: test, a: a, b: b} }

type ternary struct {
	test, a, b Expression
}

func (t *ternary) Generate(f *format.Formatter) {
	f.Print("(").Generable(t.test).Print(" ? ").Generable(t.a).Print(" : ").Generable(t.b).Print(")")
}

// typeName prints a type in expression position.
type typeName struct {
	t types.Ref
}

func (n typeName) Generate(f *format.Formatter) { f.Type(n.t) }

// TypeExpr prints a type where an expression is expected, e.g. Foo.class
// receivers.
func TypeExpr(t types.Ref) Expression { return typeName{t} }

// Parenthesized reports whether e already prints inside its own outer
// parentheses, so statement heads such as if and while can skip theirs.
func Parenthesized(e Expression) bool {
	if w, ok := e.(interface{ Expression() Expression }); ok {
		e = w.Expression()
	}
	switch e.(type) {
	case *Unary, *Binary, *cast, *ternary, direct:
		return true
	}
	return false
}
