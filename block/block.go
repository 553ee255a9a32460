// Package block assembles statements and declarations into blocks.
//
// A Block is an ordered, cursor-addressable list of content units. Factories
// insert a node at the cursor, advance the cursor, and return the node so it
// can be configured afterwards; the block holds the same pointer, so later
// changes show up in the rendering.
//
//	body := block.New()
//	i := body.Decl(types.None, types.Int, "i", expr.Int(0))
//	loop := body.While(expr.Lt(i, expr.Int(10)))
//	loop.Body().Add(expr.Incr(i))
package block

import (
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/types"
)

// Default flags of a new block.
const (
	DefaultVirtual        = false
	DefaultBracesRequired = true
	DefaultIndentRequired = true
)

// Block is a lexical scope: a list of units, an insertion cursor and the
// brace/indent policy used when it renders.
type Block struct {
	contents []Unit
	pos      int

	virtual        bool
	bracesRequired bool
	indentRequired bool
}

// New returns a block that renders with braces and indentation.
func New() *Block {
	return NewWith(DefaultBracesRequired, DefaultIndentRequired)
}

// NewSimple returns a block with neither braces nor indentation.
func NewSimple() *Block { return NewWith(false, false) }

// NewVirtual returns a simple block that splices its contents into the
// surrounding output.
func NewVirtual() *Block { return NewSimple().SetVirtual(true) }

// NewWith returns a block with explicit brace and indent policy.
func NewWith(braces, indent bool) *Block {
	return &Block{virtual: DefaultVirtual, bracesRequired: braces, indentRequired: indent}
}

func (b *Block) Virtual() bool        { return b.virtual }
func (b *Block) BracesRequired() bool { return b.bracesRequired }
func (b *Block) IndentRequired() bool { return b.indentRequired }

// SetVirtual makes the block render its body only, ignoring both flags.
func (b *Block) SetVirtual(v bool) *Block {
	b.virtual = v
	return b
}

func (b *Block) SetBracesRequired(v bool) *Block {
	b.bracesRequired = v
	return b
}

func (b *Block) SetIndentRequired(v bool) *Block {
	b.indentRequired = v
	return b
}

// Contents returns a copy of the units in order.
func (b *Block) Contents() []Unit {
	return append([]Unit(nil), b.contents...)
}

func (b *Block) Size() int     { return len(b.contents) }
func (b *Block) IsEmpty() bool { return len(b.contents) == 0 }

// Pos is the index at which the next unit is inserted.
func (b *Block) Pos() int { return b.pos }

// SetPos moves the cursor and returns its previous value.
func (b *Block) SetPos(n int) (int, error) {
	if n < 0 || n > len(b.contents) {
		return b.pos, errors.WithHintf(
			errors.NewIllegalArgumentError("illegal position provided: %d", n),
			"positions range over [0, %d]", len(b.contents))
	}
	prev := b.pos
	b.pos = n
	return prev, nil
}

// insertAt places u at index i. Declarations force braces and indent on.
func (b *Block) insertAt(i int, u Unit) {
	b.contents = append(b.contents, Unit{})
	copy(b.contents[i+1:], b.contents[i:])
	b.contents[i] = u
	if u.Kind == DeclarationUnit {
		b.bracesRequired = true
		b.indentRequired = true
	}
}

// insert adds u at the cursor and advances it.
func (b *Block) insert(u Unit) {
	b.insertAt(b.pos, u)
	b.pos++
}

func (b *Block) addStatement(s format.Statement) { b.insert(StatementOf(s)) }

// Insert adds a unit at the cursor and advances it.
func (b *Block) Insert(u Unit) error {
	if !u.valid() {
		return errors.NewIllegalArgumentError("cannot insert empty %s unit", u.Kind)
	}
	b.insert(u)
	return nil
}

// InsertBefore places u immediately before anchor. The cursor does not move.
// The block is unchanged when anchor is not part of it.
func (b *Block) InsertBefore(u Unit, anchor any) error {
	if !u.valid() {
		return errors.NewIllegalArgumentError("cannot insert empty %s unit", u.Kind)
	}
	i := b.indexOf(anchor)
	if i < 0 {
		return errors.NewIndexNotFoundError("insert before: anchor %T not in block", anchor)
	}
	b.insertAt(i, u)
	return nil
}

func (b *Block) indexOf(handle any) int {
	for i, u := range b.contents {
		if u.refersTo(handle) {
			return i
		}
	}
	return -1
}

// Remove drops the unit whose payload is handle.
func (b *Block) Remove(handle any) error {
	i := b.indexOf(handle)
	if i < 0 {
		return errors.NewIndexNotFoundError("remove: %T not in block", handle)
	}
	return b.RemoveAt(i)
}

// RemoveAt drops the unit at index i. The cursor shifts down when the unit
// sat before it.
func (b *Block) RemoveAt(i int) error {
	if i < 0 || i >= len(b.contents) {
		return errors.NewIndexNotFoundError("remove at %d: block has %d units", i, len(b.contents))
	}
	b.contents = append(b.contents[:i], b.contents[i+1:]...)
	if i < b.pos {
		b.pos--
	}
	return nil
}

// RemoveAll clears the block and resets the cursor.
func (b *Block) RemoveAll() {
	b.contents = nil
	b.pos = 0
}

// Decl declares a local variable. init may be nil.
func (b *Block) Decl(mods types.Mods, t types.Ref, name string, init expr.Expression) *expr.Var {
	v := expr.NewVar(mods, t, name, init)
	b.insert(DeclarationOf(v))
	return v
}

// DeclSimple declares an uninitialised local variable without modifiers.
func (b *Block) DeclSimple(t types.Ref, name string) *expr.Var {
	return b.Decl(types.None, t, name, nil)
}

func (b *Block) assign(a *expr.Assignment) *Block {
	b.addStatement(a)
	return b
}

func (b *Block) Assign(lhs expr.AssignmentTarget, rhs expr.Expression) *Block {
	return b.assign(expr.Assign(lhs, rhs))
}

func (b *Block) AssignPlus(lhs expr.AssignmentTarget, rhs expr.Expression) *Block {
	return b.assign(expr.AssignPlus(lhs, rhs))
}

func (b *Block) AssignMinus(lhs expr.AssignmentTarget, rhs expr.Expression) *Block {
	return b.assign(expr.AssignMinus(lhs, rhs))
}

func (b *Block) AssignTimes(lhs expr.AssignmentTarget, rhs expr.Expression) *Block {
	return b.assign(expr.AssignTimes(lhs, rhs))
}

func (b *Block) AssignDivide(lhs expr.AssignmentTarget, rhs expr.Expression) *Block {
	return b.assign(expr.AssignDivide(lhs, rhs))
}

func (b *Block) invocation(inv *expr.Invocation) *expr.Invocation {
	b.addStatement(inv)
	return inv
}

// Invoke calls name on target. A nil target calls an unqualified method.
func (b *Block) Invoke(target expr.Expression, name string) *expr.Invocation {
	return b.invocation(expr.Invoke(target, name))
}

// InvokeThis calls name on this.
func (b *Block) InvokeThis(name string) *expr.Invocation {
	return b.Invoke(expr.This, name)
}

func (b *Block) InvokeMethod(target expr.Expression, m *expr.Method) *expr.Invocation {
	return b.invocation(expr.InvokeMethod(target, m))
}

func (b *Block) StaticInvoke(t types.Ref, name string) *expr.Invocation {
	return b.invocation(expr.StaticInvoke(t, name))
}

// New instantiates t as a statement.
func (b *Block) New(t types.Ref) *expr.Invocation {
	return b.invocation(expr.New(t))
}

// Add inserts an arbitrary statement.
func (b *Block) Add(s format.Statement) *Block {
	b.addStatement(s)
	return b
}

// AddRaw inserts g with no statement terminator.
func (b *Block) AddRaw(g format.Generable) *Block {
	b.insert(RawOf(g))
	return b
}

func (b *Block) nested(n *Block) *Block {
	b.addStatement(n)
	return n
}

// Block opens a nested block with braces and indentation.
func (b *Block) Block() *Block { return b.nested(New()) }

// BlockSimple opens a nested block with neither braces nor indentation.
func (b *Block) BlockSimple() *Block { return b.nested(NewSimple()) }

// BlockVirtual opens a nested block whose statements render as if they were
// written directly in b.
func (b *Block) BlockVirtual() *Block { return b.nested(NewVirtual()) }

func (b *Block) BlockWith(braces, indent bool) *Block {
	return b.nested(NewWith(braces, indent))
}

// Generate renders the block with its brace policy but no trailing newline.
func (b *Block) Generate(f *format.Formatter) {
	if b.virtual {
		b.generateBody(f)
		return
	}
	if b.bracesRequired {
		f.Print("{").Newline()
	}
	if b.indentRequired {
		f.Indent()
	}
	b.generateBody(f)
	if b.indentRequired {
		f.Outdent()
	}
	if b.bracesRequired {
		f.Print("}")
	}
}

func (b *Block) generateBody(f *format.Formatter) {
	for _, u := range b.contents {
		u.generate(f)
	}
}

// State renders the block in statement position.
func (b *Block) State(f *format.Formatter) {
	f.Generable(b)
	if !b.virtual && b.bracesRequired {
		f.Newline()
	}
}
