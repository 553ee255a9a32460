package expr

import (
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// AssignmentTarget is an expression that may appear on the left of an
// assignment: a variable, a field or an array component.
type AssignmentTarget interface {
	Expression
	assignable()
}

// FieldRef names a variable or field, optionally qualified by an object or,
// for static access, by a type.
type FieldRef struct {
	object Expression
	owner  types.Ref
	name   string
}

// Ref references a name in scope.
func Ref(name string) *FieldRef { return &FieldRef{name: name} }

// RefOn references a member of object (instance access).
func RefOn(object Expression, name string) *FieldRef {
	return &FieldRef{object: object, name: name}
}

// StaticRef references a static member of a type.
func StaticRef(owner types.Ref, name string) *FieldRef {
	return &FieldRef{owner: owner, name: name}
}

func (r *FieldRef) Name() string   { return r.name }
func (r *FieldRef) IsStatic() bool { return r.owner != nil }

func (r *FieldRef) Generate(f *format.Formatter) {
	switch {
	case r.object != nil:
		f.Generable(r.object).Print(".")
	case r.owner != nil:
		f.Type(r.owner).Print(".")
	}
	f.Print(r.name)
}

func (*FieldRef) assignable() {}

// ArrayComponent is array[index].
type ArrayComponent struct {
	array Expression
	index Expression
}

// Component indexes into an array.
func Component(array, index Expression) *ArrayComponent {
	return &ArrayComponent{array: array, index: index}
}

// Component0 is array[0].
func Component0(array Expression) *ArrayComponent { return Component(array, Int(0)) }

func (c *ArrayComponent) Generate(f *format.Formatter) {
	f.Generable(c.array).Print("[").Generable(c.index).Print("]")
}

func (*ArrayComponent) assignable() {}

// Invocation is a method call or an object creation. Arguments are added
// after construction, so an invocation inserted into a block can still be
// completed through the returned pointer.
type Invocation struct {
	object Expression
	owner  types.Ref
	name   string
	isNew  bool
	args   []Expression
}

// Invoke calls name on object; a nil object calls an unqualified method.
func Invoke(object Expression, name string) *Invocation {
	return &Invocation{object: object, name: name}
}

// InvokeMethod calls m on object.
func InvokeMethod(object Expression, m *Method) *Invocation {
	return &Invocation{object: object, name: m.Name}
}

// StaticInvoke calls a static method of a type.
func StaticInvoke(owner types.Ref, name string) *Invocation {
	return &Invocation{owner: owner, name: name}
}

// New creates an instance of t.
func New(t types.Ref) *Invocation {
	return &Invocation{owner: t, isNew: true}
}

// Arg appends an argument.
func (inv *Invocation) Arg(e Expression) *Invocation {
	inv.args = append(inv.args, e)
	return inv
}

// Args returns a copy of the arguments.
func (inv *Invocation) Args() []Expression {
	return append([]Expression(nil), inv.args...)
}

func (inv *Invocation) Name() string { return inv.name }

func (inv *Invocation) Generate(f *format.Formatter) {
	switch {
	case inv.isNew:
		f.Print("new ").Type(inv.owner)
	case inv.object != nil:
		f.Generable(inv.object).Print(".").Print(inv.name)
	case inv.owner != nil:
		f.Type(inv.owner).Print(".").Print(inv.name)
	default:
		f.Print(inv.name)
	}
	f.Print("(")
	for i, a := range inv.args {
		if i > 0 {
			f.Print(", ")
		}
		f.Generable(a)
	}
	f.Print(")")
}

func (inv *Invocation) State(f *format.Formatter) {
	f.Generable(inv).Print(";").Newline()
}
