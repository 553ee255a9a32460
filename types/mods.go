package types

import "strings"

// Mods is a set of declaration modifiers.
type Mods uint16

// None is the empty modifier set.
const None Mods = 0

const (
	Public Mods = 1 << iota
	Protected
	Private
	Abstract
	Static
	Final
	Transient
	Volatile
	Synchronized
	Native
	Default
)

// Canonical order used when printing.
var modOrder = []struct {
	mod  Mods
	name string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Default, "default"},
	{Static, "static"},
	{Final, "final"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Synchronized, "synchronized"},
	{Native, "native"},
}

// Has reports whether all of m2 is set in m.
func (m Mods) Has(m2 Mods) bool { return m&m2 == m2 }

// IsStatic reports whether the static modifier is set.
func (m Mods) IsStatic() bool { return m.Has(Static) }

// Names returns the set modifiers in canonical order.
func (m Mods) Names() []string {
	var names []string
	for _, o := range modOrder {
		if m&o.mod != 0 {
			names = append(names, o.name)
		}
	}
	return names
}

func (m Mods) String() string {
	return strings.Join(m.Names(), " ")
}

// ParseMods maps modifier keywords to a set. Unknown keywords are returned
// separately so callers can report them.
func ParseMods(words []string) (Mods, []string) {
	var m Mods
	var unknown []string
	for _, w := range words {
		found := false
		for _, o := range modOrder {
			if o.name == w {
				m |= o.mod
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, w)
		}
	}
	return m, unknown
}
