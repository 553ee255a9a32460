package block

import (
	"reflect"

	"github.com/teranos/jcodemodel/format"
)

// Kind tags the content of a Unit.
type Kind int

const (
	// DeclarationUnit is emitted through the declaration path.
	DeclarationUnit Kind = iota
	// StatementUnit terminates its own line.
	StatementUnit
	// RawUnit is emitted as-is with no terminator, e.g. a lambda's
	// expression body.
	RawUnit
)

func (k Kind) String() string {
	switch k {
	case DeclarationUnit:
		return "declaration"
	case StatementUnit:
		return "statement"
	case RawUnit:
		return "raw"
	}
	return "unknown"
}

// Unit is one entry of a block's contents.
type Unit struct {
	Kind        Kind
	Declaration format.Declaration
	Statement   format.Statement
	Raw         format.Generable
}

// DeclarationOf tags d as a declaration unit.
func DeclarationOf(d format.Declaration) Unit { return Unit{Kind: DeclarationUnit, Declaration: d} }

// StatementOf tags s as a statement unit.
func StatementOf(s format.Statement) Unit { return Unit{Kind: StatementUnit, Statement: s} }

// RawOf tags g as a raw unit.
func RawOf(g format.Generable) Unit { return Unit{Kind: RawUnit, Raw: g} }

// Value returns the payload, which is the handle callers hold.
func (u Unit) Value() any {
	switch u.Kind {
	case DeclarationUnit:
		return u.Declaration
	case StatementUnit:
		return u.Statement
	default:
		return u.Raw
	}
}

func (u Unit) valid() bool { return u.Value() != nil }

// refersTo reports whether the unit's payload is handle. Handles are
// compared by identity; payloads whose dynamic contents cannot be compared
// never match.
func (u Unit) refersTo(handle any) bool {
	v := u.Value()
	if v == nil || handle == nil {
		return false
	}
	if !reflect.ValueOf(v).Comparable() || !reflect.ValueOf(handle).Comparable() {
		return false
	}
	return v == handle
}

func (u Unit) generate(f *format.Formatter) {
	switch u.Kind {
	case DeclarationUnit:
		f.Declaration(u.Declaration)
	case StatementUnit:
		f.Statement(u.Statement)
	case RawUnit:
		f.Generable(u.Raw)
	}
}
