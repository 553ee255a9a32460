package manifest

import (
	"io/fs"
	"regexp"
	"strconv"
	"strings"

	"github.com/teranos/jcodemodel/block"
	"github.com/teranos/jcodemodel/contract"
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/resource"
	"github.com/teranos/jcodemodel/types"
	"go.uber.org/zap"
)

var (
	identPath = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
	intLit    = regexp.MustCompile(`^-?[0-9]+[lL]?$`)
)

// Option configures Build.
type Option func(*builder)

// WithStaticFS resolves static file entries against fsys, normally the
// manifest's directory.
func WithStaticFS(fsys fs.FS) Option {
	return func(b *builder) { b.static = fsys }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(b *builder) { b.logger = l }
}

type builder struct {
	static fs.FS
	logger *zap.SugaredLogger
}

// Build turns every fragment into a source file and every static entry into
// a verbatim copy.
func Build(m *Manifest, opts ...Option) ([]resource.File, error) {
	b := &builder{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(b)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var files []resource.File
	for _, f := range m.Fragments {
		unit, err := b.fragment(f)
		if err != nil {
			return nil, errors.Wrapf(err, "fragment %s", f.Name)
		}
		files = append(files, resource.SourceFile{Name: m.FilePath(f), Unit: unit})
	}
	if len(m.Static) > 0 && b.static == nil {
		return nil, errors.NewIllegalArgumentError("static files listed but no static filesystem given")
	}
	for _, name := range m.Static {
		files = append(files, resource.NewStaticFile(b.static, name))
	}
	b.logger.Debugw("built manifest", "fragments", len(m.Fragments), "static", len(m.Static))
	return files, nil
}

// BuildFragment renders one fragment: its overlay, then its body, spliced
// into a virtual root.
func BuildFragment(f Fragment) (*block.Block, error) {
	return (&builder{logger: zap.NewNop().Sugar()}).fragment(f)
}

func (b *builder) fragment(f Fragment) (*block.Block, error) {
	root := block.NewVirtual()
	if f.Contract != nil {
		a, err := annotation(f.Contract)
		if err != nil {
			return nil, err
		}
		root.AddAnnotation(a)
	}
	if err := b.statements(root, f.Body); err != nil {
		return nil, err
	}
	return root, nil
}

func annotation(c *Contract) (*contract.Annotation, error) {
	a := contract.NewAnnotation()
	if c.Text != "" {
		a.Append(c.Text)
	}
	for _, s := range c.Requires {
		if err := a.AddRequires(contract.Of(Expression(s))); err != nil {
			return nil, err
		}
	}
	for _, s := range c.Ensures {
		if err := a.AddEnsures(contract.Of(Expression(s))); err != nil {
			return nil, err
		}
	}
	for _, cl := range c.Clauses {
		if len(cl.Exprs) > 0 && len(cl.Attributes) > 0 {
			return nil, errors.NewIllegalArgumentError("clause %s: exprs and attributes are exclusive", cl.Keyword)
		}
		if len(cl.Attributes) > 0 {
			for _, attr := range cl.Attributes {
				if err := a.AddAttribute(cl.Keyword, attr.Key, attr.Value); err != nil {
					return nil, err
				}
			}
			continue
		}
		exprs := make([]contract.Expr, len(cl.Exprs))
		for i, s := range cl.Exprs {
			exprs[i] = contract.Of(Expression(s))
		}
		if err := a.AddClause(cl.Keyword, exprs...); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (b *builder) statements(dst *block.Block, stmts []Statement) error {
	for i, s := range stmts {
		if err := b.statement(dst, s); err != nil {
			return errors.Wrapf(err, "statement %d (%s)", i, s.Kind())
		}
	}
	return nil
}

func (b *builder) statement(dst *block.Block, s Statement) error {
	switch s.Kind() {
	case "decl":
		t, err := typeOf(s.Decl.Type)
		if err != nil {
			return err
		}
		mods, unknown := types.ParseMods(s.Decl.Mods)
		if len(unknown) > 0 {
			return errors.NewIllegalArgumentError("unknown modifiers %v", unknown)
		}
		if s.Decl.Name == "" {
			return errors.NewIllegalArgumentError("decl needs a name")
		}
		var init expr.Expression
		if s.Decl.Init != "" {
			init = Expression(s.Decl.Init)
		}
		dst.Decl(mods, t, s.Decl.Name, init)
	case "assign":
		return assign(dst, s.Assign)
	case "call":
		return call(dst, s.Call)
	case "if":
		c := dst.If(Expression(s.If))
		if err := b.statements(c.Then(), s.Then); err != nil {
			return err
		}
		if len(s.Else) > 0 {
			return b.statements(c.Else(), s.Else)
		}
	case "while":
		return b.statements(dst.While(Expression(s.While)).Body(), s.Body)
	case "for_each":
		t, err := typeOf(s.ForEach.Type)
		if err != nil {
			return err
		}
		return b.statements(dst.ForEach(t, s.ForEach.Name, Expression(s.ForEach.In)).Body(), s.Body)
	case "return":
		var e expr.Expression
		if *s.Return != "" {
			e = Expression(*s.Return)
		}
		dst.Return(e)
	case "throw":
		dst.Throw(Expression(s.Throw))
	case "comment":
		dst.AddComment(s.Comment)
	case "raw":
		dst.Direct(s.Raw)
	case "block":
		return b.statements(dst.Block(), s.Block)
	case "virtual":
		return b.statements(dst.BlockVirtual(), s.Virtual)
	default:
		return errors.NewIllegalArgumentError("statement must set exactly one kind")
	}
	return nil
}

func assign(dst *block.Block, a *Assign) error {
	lhs, ok := Expression(a.Target).(expr.AssignmentTarget)
	if !ok {
		return errors.NewIllegalArgumentError("assign target %q is not a variable or field", a.Target)
	}
	rhs := Expression(a.Value)
	switch a.Op {
	case "", "=":
		dst.Assign(lhs, rhs)
	case "+=":
		dst.AssignPlus(lhs, rhs)
	case "-=":
		dst.AssignMinus(lhs, rhs)
	case "*=":
		dst.AssignTimes(lhs, rhs)
	case "/=":
		dst.AssignDivide(lhs, rhs)
	default:
		return errors.NewIllegalArgumentError("unknown assignment operator %q", a.Op)
	}
	return nil
}

func call(dst *block.Block, c *Call) error {
	if c.Method == "" {
		return errors.NewIllegalArgumentError("call needs a method")
	}
	if c.Target != "" && c.Static != "" {
		return errors.NewIllegalArgumentError("call %s: target and static are exclusive", c.Method)
	}
	var inv *expr.Invocation
	switch {
	case c.Static != "":
		t, err := typeOf(c.Static)
		if err != nil {
			return err
		}
		inv = dst.StaticInvoke(t, c.Method)
	case c.Target != "":
		inv = dst.Invoke(Expression(c.Target), c.Method)
	default:
		inv = dst.Invoke(nil, c.Method)
	}
	for _, a := range c.Args {
		inv.Arg(Expression(a))
	}
	return nil
}

func typeOf(name string) (types.Ref, error) {
	if name == "" {
		return nil, errors.NewIllegalArgumentError("missing type")
	}
	return types.Parse(name), nil
}

// Expression maps manifest text to an expression: keywords and integers
// become literals (unsuffixed integers outside the int range become longs), quoted text a string literal, identifier paths such as
// this.count field references, and anything else a direct fragment.
func Expression(s string) expr.Expression {
	s = strings.TrimSpace(s)
	switch s {
	case "true":
		return expr.True
	case "false":
		return expr.False
	case "null":
		return expr.Null
	case "this":
		return expr.This
	}
	if intLit.MatchString(s) {
		if last := s[len(s)-1]; last == 'l' || last == 'L' {
			if v, err := strconv.ParseInt(s[:len(s)-1], 10, 64); err == nil {
				return expr.Long(v)
			}
		} else if v, err := strconv.ParseInt(s, 10, 32); err == nil {
			return expr.Int(int(v))
		} else if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			// Too wide for an int literal
			return expr.Long(v)
		}
	}
	if len(s) >= 2 && s[0] == '"' {
		if v, err := strconv.Unquote(s); err == nil {
			return expr.Str(v)
		}
	}
	if identPath.MatchString(s) {
		parts := strings.Split(s, ".")
		var e expr.Expression
		if parts[0] == "this" {
			e = expr.This
		} else {
			e = expr.Ref(parts[0])
		}
		for _, p := range parts[1:] {
			e = expr.RefOn(e, p)
		}
		return e
	}
	return expr.Direct(s)
}
