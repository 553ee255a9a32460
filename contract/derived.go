package contract

import (
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
)

// DerivedOp identifies a derived boolean operator.
type DerivedOp int

const (
	Implies DerivedOp = iota
	ReverseImplies
	Equivalence
	Inequivalence
)

// Symbol is the operator's spelling in JML.
func (op DerivedOp) Symbol() string {
	switch op {
	case Implies:
		return "==>"
	case ReverseImplies:
		return "<=="
	case Equivalence:
		return "<==>"
	case Inequivalence:
		return "<=!=>"
	}
	return "?"
}

func (op DerivedOp) String() string { return op.Symbol() }

// Derived is the result of a derived operator. It renders as its expansion
// into base operators and cannot itself be an operand.
type Derived struct {
	op    DerivedOp
	left  Atom
	right expr.Expression
}

func (d Derived) Op() DerivedOp { return d.op }

// Expand returns the base-operator definition:
//
//	implies(p, q)       = !p || q
//	rimplies(p, q)      = p || !q
//	equivalence(p, q)   = p == q
//	inequivalence(p, q) = p != q
func (d Derived) Expand() expr.Expression {
	p, q := d.left.x, d.right
	switch d.op {
	case Implies:
		return expr.Cor(expr.Not(p), q)
	case ReverseImplies:
		return expr.Cor(p, expr.Not(q))
	case Equivalence:
		return expr.Eq(p, q)
	default:
		return expr.Ne(p, q)
	}
}

// Native spells the operator with its JML symbol
// instead of expanding it, e.g. "(a > 0) ==> (b > 0)".
func (d Derived) Native() Binary {
	return Op(d.left, d.op.Symbol(), Of(d.right))
}

func (d Derived) render(f *format.Formatter) { f.Generable(d.Expand()) }

func (a Atom) derive(op DerivedOp, r expr.Expression) Derived {
	return Derived{op: op, left: a, right: r}
}

// Implies is p ==> q, defined as !p || q.
func (a Atom) Implies(r expr.Expression) Derived { return a.derive(Implies, r) }

// ImpliesLit is p ==> b for a boolean literal.
func (a Atom) ImpliesLit(b bool) Derived { return a.derive(Implies, expr.Bool(b)) }

// RImplies is p <== q, defined as p || !q.
func (a Atom) RImplies(r expr.Expression) Derived { return a.derive(ReverseImplies, r) }

// RImpliesLit is p <== b for a boolean literal.
func (a Atom) RImpliesLit(b bool) Derived { return a.derive(ReverseImplies, expr.Bool(b)) }

// Equiv is p <==> q, defined as p == q.
func (a Atom) Equiv(r expr.Expression) Derived { return a.derive(Equivalence, r) }

// EquivLit is p <==> b for a boolean literal.
func (a Atom) EquivLit(b bool) Derived { return a.derive(Equivalence, expr.Bool(b)) }

// Inequiv is p <=!=> q, defined as p != q.
func (a Atom) Inequiv(r expr.Expression) Derived { return a.derive(Inequivalence, r) }

// InequivLit is p <=!=> b for a boolean literal.
func (a Atom) InequivLit(b bool) Derived { return a.derive(Inequivalence, expr.Bool(b)) }

// Binary is a JML-native infix operator between two atoms,
// printed without parentheses: "left op right".
type Binary struct {
	left  Atom
	op    string
	right Atom
}

// Op builds a native binary contract expression.
func Op(left Atom, op string, right Atom) Binary {
	return Binary{left: left, op: op, right: right}
}

func (b Binary) render(f *format.Formatter) {
	f.Generable(b.left).Print(" ").Print(b.op).Print(" ").Generable(b.right)
}

// Render prints a contract expression on its own, mostly for diagnostics.
func Render(e Expr, opts ...format.Option) (string, error) {
	return format.Render(format.GenerableFunc(e.render), opts...)
}
