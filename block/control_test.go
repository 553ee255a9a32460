package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teranos/jcodemodel/expr"
	"github.com/teranos/jcodemodel/types"
)

var (
	stringType = types.Direct("java.lang.String")
	ioError    = types.Direct("java.io.IOException")
)

func TestConditional(t *testing.T) {
	x := expr.Ref("x")

	tests := []struct {
		name  string
		build func(b *Block)
		want  string
	}{
		{
			name: "then only",
			build: func(b *Block) {
				b.If(expr.Gt0(x)).Then().Return(x)
			},
			want: "if (x > 0) {\n    return x;\n}\n",
		},
		{
			name: "then and else",
			build: func(b *Block) {
				c := b.If(expr.Gt0(x))
				c.Then().Return(x)
				c.Else().Throw(expr.New(types.Direct("java.lang.IllegalStateException")))
			},
			want: "if (x > 0) {\n    return x;\n} else {\n    throw new java.lang.IllegalStateException();\n}\n",
		},
		{
			name: "else if chain",
			build: func(b *Block) {
				c := b.If(expr.Gt0(x))
				c.Then().Return(expr.Int(1))
				c.ElseIf(expr.Lt0(x)).Then().Return(expr.Int(-1))
			},
			want: "if (x > 0) {\n    return 1;\n} else if (x < 0) {\n    return -1;\n}\n",
		},
		{
			name: "identifier test gets parentheses",
			build: func(b *Block) {
				b.If(expr.Ref("ready"))
			},
			want: "if (ready) {\n}\n",
		},
		{
			name: "empty else is dropped",
			build: func(b *Block) {
				c := b.IfThen(expr.Ref("ok"), &Return{})
				c.Else()
			},
			want: "if (ok) {\n    return;\n}\n",
		},
		{
			name: "if then else statements",
			build: func(b *Block) {
				b.IfThenElse(expr.Ref("ok"), &Return{Expr: expr.True}, &Return{Expr: expr.False})
			},
			want: "if (ok) {\n    return true;\n} else {\n    return false;\n}\n",
		},
		{
			name: "true test collapses to then",
			build: func(b *Block) {
				b.If(expr.True).Then().Return(nil)
			},
			want: "return;\n",
		},
		{
			name: "false test collapses to else",
			build: func(b *Block) {
				c := b.If(expr.Not(expr.True))
				c.Then().Return(expr.Int(1))
				c.Else().Return(expr.Int(2))
			},
			want: "return 2;\n",
		},
		{
			name: "false test without else prints nothing",
			build: func(b *Block) {
				b.If(expr.False).Then().Return(nil)
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewSimple()
			tt.build(b)
			assert.Equal(t, tt.want, render(t, b))
		})
	}
}

func TestLoops(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Block)
		want  string
	}{
		{
			name: "for",
			build: func(b *Block) {
				l := b.For()
				i := l.Init(types.None, types.Int, "i", expr.Int(0))
				l.Test(expr.Lt(i, expr.Int(10))).Update(expr.Incr(i))
				l.Body().Invoke(nil, "tick").Arg(i)
			},
			want: "for (int i = 0; (i < 10); i++) {\n    tick(i);\n}\n",
		},
		{
			name: "for with two updates",
			build: func(b *Block) {
				i, j := expr.Ref("i"), expr.Ref("j")
				l := b.For().InitAssign(i, expr.Int(0)).InitAssign(j, expr.Int(9))
				l.Test(expr.Lt(i, j)).Update(expr.Incr(i)).Update(expr.Decr(j))
			},
			want: "for (i = 0, j = 9; (i < j); i++, j--) {\n}\n",
		},
		{
			name:  "empty for",
			build: func(b *Block) { b.For() },
			want:  "for (;;) {\n}\n",
		},
		{
			name: "while",
			build: func(b *Block) {
				b.While(expr.Ref("running")).Body().Invoke(nil, "step")
			},
			want: "while (running) {\n    step();\n}\n",
		},
		{
			name: "do",
			build: func(b *Block) {
				n := expr.Ref("n")
				b.Do(expr.Gt0(n)).Body().Add(expr.Decr(n))
			},
			want: "do {\n    n--;\n} while (n > 0);\n",
		},
		{
			name: "for each",
			build: func(b *Block) {
				l := b.ForEach(stringType, "s", expr.Ref("names"))
				l.Var().SetMods(types.Final)
				l.Body().Invoke(nil, "use").Arg(l.Var())
			},
			want: "for (final java.lang.String s : names) {\n    use(s);\n}\n",
		},
		{
			name: "synchronized",
			build: func(b *Block) {
				b.Synchronized(expr.Ref("lock")).Body().Invoke(nil, "work")
			},
			want: "synchronized (lock) {\n    work();\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewSimple()
			tt.build(b)
			assert.Equal(t, tt.want, render(t, b))
		})
	}
}

func TestLabelledJumps(t *testing.T) {
	b := NewSimple()
	outer := b.Label("outer")
	body := b.While(expr.True).Body()
	body.Break(outer)
	body.Continue(nil)
	body.Continue(outer)
	body.Break(nil)

	want := "outer:\n" +
		"while (true) {\n" +
		"    break outer;\n" +
		"    continue;\n" +
		"    continue outer;\n" +
		"    break;\n" +
		"}\n"
	assert.Equal(t, want, render(t, b))
	assert.Equal(t, "outer", outer.Name())
}

func TestSwitch(t *testing.T) {
	b := NewSimple()
	s := b.Switch(expr.Ref("k"))
	d := s.Default()
	d.Body().Return(nil)
	one := s.Case(expr.Int(1))
	one.Body().Invoke(nil, "one")
	one.Body().Break(nil)
	s.Case(expr.Int(2)).Body().Invoke(nil, "two")

	want := "switch (k) {\n" +
		"    case 1:\n" +
		"        one();\n" +
		"        break;\n" +
		"    case 2:\n" +
		"        two();\n" +
		"    default:\n" +
		"        return;\n" +
		"}\n"
	assert.Equal(t, want, render(t, b))
	assert.Len(t, s.Cases(), 2)
	assert.Same(t, d, s.Default())
	assert.Nil(t, d.Label())
}

func TestTry(t *testing.T) {
	b := NewSimple()
	tr := b.Try()
	in := tr.With(types.None, types.Direct("java.io.InputStream"), "in", expr.Invoke(nil, "open"))
	tr.Body().Invoke(in, "read")
	c := tr.Catch(ioError).Or(types.Direct("java.lang.RuntimeException"))
	e := c.Param("e")
	c.Body().Throw(e)
	tr.Finally().Invoke(nil, "done")

	want := "try (java.io.InputStream in = open()) {\n" +
		"    in.read();\n" +
		"} catch (java.io.IOException | java.lang.RuntimeException e) {\n" +
		"    throw e;\n" +
		"} finally {\n" +
		"    done();\n" +
		"}\n"
	assert.Equal(t, want, render(t, b))
}

func TestTryDefaults(t *testing.T) {
	b := NewSimple()
	tr := b.Try()
	tr.Body().Invoke(nil, "risky")
	c := tr.Catch(ioError)
	c.Param(DefaultCatchParam).SetMods(types.Final)

	want := "try {\n" +
		"    risky();\n" +
		"} catch (final java.io.IOException _x) {\n" +
		"}\n"
	assert.Equal(t, want, render(t, b))
}

func TestSimpleStatements(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Block)
		want  string
	}{
		{"return", func(b *Block) { b.Return(nil) }, "return;\n"},
		{"return value", func(b *Block) { b.Return(expr.Plus(expr.Ref("a"), expr.Int(1))) }, "return (a + 1);\n"},
		{"throw", func(b *Block) { b.Throw(expr.Ref("err")) }, "throw err;\n"},
		{"comment", func(b *Block) { b.AddComment("first\n").Append("second") }, "// first\n// second\n"},
		{"empty comment", func(b *Block) { b.AddComment("") }, "//\n"},
		{"direct", func(b *Block) { b.Direct("a = b + c;") }, "a = b + c;\n"},
		{"tight statement", func(b *Block) { b.Add(expr.PreIncr(expr.Ref("n"))) }, "++n;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewSimple()
			tt.build(b)
			assert.Equal(t, tt.want, render(t, b))
		})
	}
}

func TestDirectKeepsIndentation(t *testing.T) {
	b := New()
	b.Direct("a();\nb();")
	assert.Equal(t, "{\n    a();\n    b();\n}", render(t, b))
}

func TestControlConfiguredAfterInsert(t *testing.T) {
	b := New()
	loop := b.While(expr.Ref("more"))
	b.Return(nil)
	loop.Body().Invoke(nil, "next")

	want := "{\n" +
		"    while (more) {\n" +
		"        next();\n" +
		"    }\n" +
		"    return;\n" +
		"}"
	assert.Equal(t, want, render(t, b))
}
