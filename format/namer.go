package format

import "github.com/teranos/jcodemodel/types"

// TypeNamer decides how a type reference is printed. Import management is
// outside the model; a namer is where a caller that manages imports plugs in.
type TypeNamer interface {
	TypeName(t types.Ref) string
}

// TypeNamerFunc adapts a function to TypeNamer.
type TypeNamerFunc func(t types.Ref) string

func (fn TypeNamerFunc) TypeName(t types.Ref) string { return fn(t) }

var (
	// FullNames prints fully qualified names.
	FullNames TypeNamer = TypeNamerFunc(func(t types.Ref) string { return t.FullName() })

	// SimpleNames prints names without their package.
	SimpleNames TypeNamer = TypeNamerFunc(types.SimpleNameOf)
)

// NamerFor maps a configured mode ("full" or "simple") to a TypeNamer.
func NamerFor(mode string) (TypeNamer, bool) {
	switch mode {
	case "", "full":
		return FullNames, true
	case "simple":
		return SimpleNames, true
	default:
		return nil, false
	}
}
