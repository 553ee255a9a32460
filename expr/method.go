package expr

import (
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// Method is the part of a method declaration that references need: who owns
// it, what it is called, and whether it is static.
type Method struct {
	Mods  types.Mods
	Owner types.Ref
	Name  string
}

// NewMethod describes a method of owner.
func NewMethod(mods types.Mods, owner types.Ref, name string) *Method {
	return &Method{Mods: mods, Owner: owner, Name: name}
}

// MethodRef is a method reference (Type::name, var::name, Type::new).
type MethodRef struct {
	method *Method
	typ    types.Ref
	v      *Var
	name   string
}

// MethodRefStatic references a static method. Instance methods need a
// receiver and are rejected.
func MethodRefStatic(m *Method) (*MethodRef, error) {
	if m == nil {
		return nil, errors.NewIllegalArgumentError("method must not be nil")
	}
	if !m.Mods.IsStatic() {
		return nil, errors.WithHint(
			errors.NewIllegalArgumentError("method %s is not static", m.Name),
			"use MethodRefInstance with a variable for instance methods")
	}
	return &MethodRef{method: m}, nil
}

// MethodRefType references a method by name on a type.
func MethodRefType(t types.Ref, name string) (*MethodRef, error) {
	if t == nil {
		return nil, errors.NewIllegalArgumentError("type must not be nil")
	}
	if name == "" {
		return nil, errors.NewIllegalArgumentError("method name must not be empty")
	}
	return &MethodRef{typ: t, name: name}, nil
}

// MethodRefConstructor references the constructor of t (Type::new).
func MethodRefConstructor(t types.Ref) (*MethodRef, error) {
	return MethodRefType(t, "new")
}

// MethodRefVar references a method by name on a variable.
func MethodRefVar(v *Var, name string) (*MethodRef, error) {
	if v == nil {
		return nil, errors.NewIllegalArgumentError("variable must not be nil")
	}
	if name == "" {
		return nil, errors.NewIllegalArgumentError("method name must not be empty")
	}
	return &MethodRef{v: v, name: name}, nil
}

// MethodRefInstance references an instance method on a variable. Static
// methods are rejected.
func MethodRefInstance(v *Var, m *Method) (*MethodRef, error) {
	if v == nil || m == nil {
		return nil, errors.NewIllegalArgumentError("variable and method must not be nil")
	}
	if m.Mods.IsStatic() {
		return nil, errors.WithHint(
			errors.NewIllegalArgumentError("method %s is static", m.Name),
			"use MethodRefStatic for static methods")
	}
	return &MethodRef{method: m, v: v}, nil
}

// IsStatic reports whether the reference is printed through its type.
func (r *MethodRef) IsStatic() bool {
	if r.method != nil {
		return r.method.Mods.IsStatic()
	}
	return r.typ != nil
}

// Type is the owning type.
func (r *MethodRef) Type() types.Ref {
	switch {
	case r.v != nil:
		return r.v.Type()
	case r.method != nil:
		return r.method.Owner
	}
	return r.typ
}

func (r *MethodRef) Var() *Var       { return r.v }
func (r *MethodRef) Method() *Method { return r.method }

// MethodName is the referenced name.
func (r *MethodRef) MethodName() string {
	if r.method != nil {
		return r.method.Name
	}
	return r.name
}

func (r *MethodRef) Generate(f *format.Formatter) {
	if r.IsStatic() {
		f.Type(r.Type())
	} else {
		f.Generable(r.v)
	}
	f.Print("::").Print(r.MethodName())
}
