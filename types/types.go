// Package types provides the type references a code model needs to print
// declarations, casts and method references. It is intentionally thin: the
// class hierarchy, generics resolution and imports live outside the core and
// only have to satisfy Ref.
package types

import "strings"

// Ref is anything that can be printed as a type.
type Ref interface {
	// Name is the simple name, e.g. "String" or "int[]".
	Name() string
	// FullName is the fully qualified name, e.g. "java.lang.String".
	FullName() string
	// Package is the owning package ("" for primitives and arrays of primitives).
	Package() string
}

// Primitive is a built-in type such as int or boolean.
type Primitive struct {
	name string
}

func (p Primitive) Name() string     { return p.name }
func (p Primitive) FullName() string { return p.name }
func (p Primitive) Package() string  { return "" }

var (
	Void    = Primitive{"void"}
	Boolean = Primitive{"boolean"}
	Byte    = Primitive{"byte"}
	Short   = Primitive{"short"}
	Char    = Primitive{"char"}
	Int     = Primitive{"int"}
	Long    = Primitive{"long"}
	Float   = Primitive{"float"}
	Double  = Primitive{"double"}
)

var primitives = map[string]Primitive{
	"void": Void, "boolean": Boolean, "byte": Byte, "short": Short, "char": Char,
	"int": Int, "long": Long, "float": Float, "double": Double,
}

// Class is a class reference known only by its textual name. The full text,
// generic arguments included, is both its name and its full name; the package
// is the dotted prefix preceding the simple name.
type Class struct {
	fullName string
}

// Direct creates a class reference from a fully qualified name such as
// "com.test.GenericFragmentArguments<S,P>".
func Direct(fullName string) Class {
	return Class{fullName: strings.TrimSpace(fullName)}
}

func (c Class) Name() string     { return c.fullName }
func (c Class) FullName() string { return c.fullName }

func (c Class) Package() string {
	raw := c.fullName
	if i := strings.IndexByte(raw, '<'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.LastIndexByte(raw, '.'); i >= 0 {
		return raw[:i]
	}
	return ""
}

// SimpleName is the class name without its package prefix.
func (c Class) SimpleName() string {
	pkg := c.Package()
	if pkg == "" {
		return c.fullName
	}
	return c.fullName[len(pkg)+1:]
}

// Array is an array of an element type.
type Array struct {
	Elem Ref
}

// ArrayOf creates an array type of elem.
func ArrayOf(elem Ref) Array {
	return Array{Elem: elem}
}

func (a Array) Name() string     { return a.Elem.Name() + "[]" }
func (a Array) FullName() string { return a.Elem.FullName() + "[]" }
func (a Array) Package() string  { return a.Elem.Package() }

// Parse resolves a textual type: primitives by keyword, trailing "[]" as
// arrays, anything else as a direct class.
func Parse(name string) Ref {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(name, "[]") {
		return ArrayOf(Parse(strings.TrimSuffix(name, "[]")))
	}
	if p, ok := primitives[name]; ok {
		return p
	}
	return Direct(name)
}

// SimpleNameOf returns the package-less name of a type.
func SimpleNameOf(t Ref) string {
	switch v := t.(type) {
	case Class:
		return v.SimpleName()
	case Array:
		return SimpleNameOf(v.Elem) + "[]"
	default:
		return t.Name()
	}
}
