// Package contract implements the design-by-contract dialect and the
// annotation overlay that carries it.
//
// The dialect is a restricted view of the expression algebra. An Atom wraps
// an ordinary expression and offers every base operator plus the derived
// boolean operators (implication, reverse implication, equivalence,
// inequivalence). A derived result is a Derived, which is deliberately not an
// expr.Expression: it cannot be wrapped into an Atom or passed as an operand,
// so derived operators never nest. Real-number operands are refused.
package contract

import (
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// Expr is a contract-dialect expression: an Atom, a Derived or a Binary.
type Expr interface {
	render(f *format.Formatter)
}

// Atom is an atomic contract predicate built on a base expression.
type Atom struct {
	x expr.Expression
}

// Of lifts a base expression into the contract dialect.
func Of(e expr.Expression) Atom { return Atom{x: e} }

// Direct creates an atom from a raw contract fragment, printed in
// parentheses. Nothing checks the fragment.
func Direct(source string) Atom { return Of(expr.Direct(source)) }

// Null is the null literal as an atom.
var Null = Of(expr.Null)

// Expression returns the wrapped base expression.
func (a Atom) Expression() expr.Expression { return a.x }

func (a Atom) Generate(f *format.Formatter) { f.Generable(a.x) }
func (a Atom) render(f *format.Formatter)   { f.Generable(a.x) }

// operandKinds is the set of raw Go kinds an operator wraps as literals.
// Expressions are always accepted.
type operandKinds uint8

const (
	intOperand operandKinds = 1 << iota
	longOperand
	stringOperand
)

const (
	numericOperands = intOperand | longOperand
	plusOperands    = numericOperands | stringOperand
	shiftOperands   = intOperand
)

// operand wraps v as a literal when its kind is allowed. The dialect has no
// real-number semantics, so float operands always fail.
func operand(op string, v any, allowed operandKinds) (expr.Expression, error) {
	switch x := v.(type) {
	case expr.Expression:
		return x, nil
	case float32, float64:
		return nil, errors.WithHint(
			errors.NewUnsupportedOperationError("%s: real values are not supported in contract expressions", op),
			"express the bound with integer or long operands")
	case int:
		if allowed&intOperand != 0 {
			return expr.Int(x), nil
		}
	case int64:
		if allowed&longOperand != 0 {
			return expr.Long(x), nil
		}
	case string:
		if allowed&stringOperand != 0 {
			return expr.Str(x), nil
		}
	}
	return nil, errors.NewIllegalArgumentError("%s: unsupported operand of type %T", op, v)
}

func (a Atom) arith(op string, v any, allowed operandKinds, build func(l, r expr.Expression) expr.Expression) (expr.Expression, error) {
	r, err := operand(op, v, allowed)
	if err != nil {
		return nil, err
	}
	return build(a.x, r), nil
}

// Plus accepts an expression, int, int64 or string operand.
func (a Atom) Plus(v any) (expr.Expression, error) { return a.arith("plus", v, plusOperands, expr.Plus) }

// Minus, Mul and Div accept an expression, int or int64 operand.
func (a Atom) Minus(v any) (expr.Expression, error) {
	return a.arith("minus", v, numericOperands, expr.Minus)
}
func (a Atom) Mul(v any) (expr.Expression, error) { return a.arith("mul", v, numericOperands, expr.Mul) }
func (a Atom) Div(v any) (expr.Expression, error) { return a.arith("div", v, numericOperands, expr.Div) }

// Shl, Shr and Shrz accept an expression or int shift distance.
func (a Atom) Shl(v any) (expr.Expression, error)  { return a.arith("shl", v, shiftOperands, expr.Shl) }
func (a Atom) Shr(v any) (expr.Expression, error)  { return a.arith("shr", v, shiftOperands, expr.Shr) }
func (a Atom) Shrz(v any) (expr.Expression, error) { return a.arith("shrz", v, shiftOperands, expr.Shrz) }

func (a Atom) Neg() expr.Expression        { return expr.Neg(a.x) }
func (a Atom) Not() expr.Expression        { return expr.Not(a.x) }
func (a Atom) Complement() expr.Expression { return expr.Complement(a.x) }
func (a Atom) Incr() *expr.Tight           { return expr.Incr(a.x) }
func (a Atom) Decr() *expr.Tight           { return expr.Decr(a.x) }
func (a Atom) PreIncr() *expr.Tight        { return expr.PreIncr(a.x) }
func (a Atom) PreDecr() *expr.Tight        { return expr.PreDecr(a.x) }

func (a Atom) Mod(r expr.Expression) expr.Expression  { return expr.Mod(a.x, r) }
func (a Atom) Band(r expr.Expression) expr.Expression { return expr.Band(a.x, r) }
func (a Atom) Bor(r expr.Expression) expr.Expression  { return expr.Bor(a.x, r) }
func (a Atom) Cand(r expr.Expression) expr.Expression { return expr.Cand(a.x, r) }
func (a Atom) Cor(r expr.Expression) expr.Expression  { return expr.Cor(a.x, r) }
func (a Atom) Xor(r expr.Expression) expr.Expression  { return expr.Xor(a.x, r) }
func (a Atom) Lt(r expr.Expression) expr.Expression   { return expr.Lt(a.x, r) }
func (a Atom) Lte(r expr.Expression) expr.Expression  { return expr.Lte(a.x, r) }
func (a Atom) Gt(r expr.Expression) expr.Expression   { return expr.Gt(a.x, r) }
func (a Atom) Gte(r expr.Expression) expr.Expression  { return expr.Gte(a.x, r) }
func (a Atom) Eq(r expr.Expression) expr.Expression   { return expr.Eq(a.x, r) }
func (a Atom) Ne(r expr.Expression) expr.Expression   { return expr.Ne(a.x, r) }

func (a Atom) Lt0() expr.Expression    { return expr.Lt0(a.x) }
func (a Atom) Lte0() expr.Expression   { return expr.Lte0(a.x) }
func (a Atom) Gt0() expr.Expression    { return expr.Gt0(a.x) }
func (a Atom) Gte0() expr.Expression   { return expr.Gte0(a.x) }
func (a Atom) Eq0() expr.Expression    { return expr.Eq0(a.x) }
func (a Atom) Ne0() expr.Expression    { return expr.Ne0(a.x) }
func (a Atom) EqNull() expr.Expression { return expr.EqNull(a.x) }
func (a Atom) NeNull() expr.Expression { return expr.NeNull(a.x) }

func (a Atom) InstanceOf(t types.Ref) expr.Expression { return expr.InstanceOf(a.x, t) }

func (a Atom) Invoke(name string) *expr.Invocation         { return expr.Invoke(a.x, name) }
func (a Atom) InvokeMethod(m *expr.Method) *expr.Invocation { return expr.InvokeMethod(a.x, m) }
func (a Atom) Ref(name string) *expr.FieldRef              { return expr.RefOn(a.x, name) }
func (a Atom) Component(i expr.Expression) *expr.ArrayComponent {
	return expr.Component(a.x, i)
}
func (a Atom) Component0() *expr.ArrayComponent { return expr.Component0(a.x) }
