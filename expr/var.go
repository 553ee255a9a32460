package expr

import (
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// Var is a variable: an expression when referenced, a declaration when it
// sits in a block. Its initializer may be set or replaced after the variable
// has been inserted; the block renders whatever the Var holds at render time.
type Var struct {
	mods types.Mods
	typ  types.Ref
	name string
	init Expression
}

// NewVar creates a variable; init may be nil.
func NewVar(mods types.Mods, t types.Ref, name string, init Expression) *Var {
	return &Var{mods: mods, typ: t, name: name, init: init}
}

func (v *Var) Name() string     { return v.name }
func (v *Var) Type() types.Ref  { return v.typ }
func (v *Var) Mods() types.Mods { return v.mods }
func (v *Var) Init() Expression { return v.init }

// SetInit replaces the initializer.
func (v *Var) SetInit(e Expression) *Var {
	v.init = e
	return v
}

// SetMods replaces the modifiers.
func (v *Var) SetMods(m types.Mods) *Var {
	v.mods = m
	return v
}

// Generate prints the variable's name.
func (v *Var) Generate(f *format.Formatter) { f.Print(v.name) }

// Bind prints the declaration without a terminator, as used in for-loop
// headers, catch clauses and resource lists: "final int i = 0".
func (v *Var) Bind(f *format.Formatter) {
	if v.mods != types.None {
		f.Print(v.mods.String()).Print(" ")
	}
	f.Type(v.typ).Print(" ").Print(v.name)
	if v.init != nil {
		f.Print(" = ").Generable(v.init)
	}
}

// Declare prints the full declaration statement.
func (v *Var) Declare(f *format.Formatter) {
	v.Bind(f)
	f.Print(";").Newline()
}

func (*Var) assignable() {}
