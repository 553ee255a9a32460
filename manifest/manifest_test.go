package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/format"
	"github.com/teranos/jcodemodel/resource"
)

const clampYAML = `
package: com.example
fragments:
  - name: Clamp
    contract:
      text: Clamps x into range.
      requires: ["lo <= hi"]
      ensures: ["\\result >= lo"]
    body:
      - decl: {type: int, name: r, init: x}
      - if: "x < lo"
        then:
          - assign: {target: r, value: lo}
        else:
          - call: {static: java.util.Objects, method: requireNonNull, args: [r]}
      - return: r
`

const clampJava = "/*\n" +
	" @ Clamps x into range.\n" +
	" @ \n" +
	" @ requires (lo <= hi)\n" +
	" @ ensures (\\result >= lo)\n" +
	"@*/\n" +
	"int r = x;\n" +
	"if (x < lo) {\n" +
	"    r = lo;\n" +
	"} else {\n" +
	"    java.util.Objects.requireNonNull(r);\n" +
	"}\n" +
	"return r;\n"

const loopTOML = `
package = "demo"

[[fragments]]
name = "Loop"

[[fragments.body]]
for_each = { type = "java.lang.String", name = "s", in = "names" }

[[fragments.body.body]]
call = { method = "print", args = ["s"] }

[[fragments.body]]
return = ""
`

func ptr(s string) *string { return &s }

func renderFiles(t *testing.T, files []resource.File) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, resource.Build(resource.NewStreamWriter(&out), files))
	return out.String()
}

func TestDecodeYAML(t *testing.T) {
	m, err := Decode(strings.NewReader(clampYAML), FormatYAML)
	require.NoError(t, err)

	want := &Manifest{
		Package: "com.example",
		Fragments: []Fragment{{
			Name: "Clamp",
			Contract: &Contract{
				Text:     "Clamps x into range.",
				Requires: []string{"lo <= hi"},
				Ensures:  []string{`\result >= lo`},
			},
			Body: []Statement{
				{Decl: &Decl{Type: "int", Name: "r", Init: "x"}},
				{
					If:   "x < lo",
					Then: []Statement{{Assign: &Assign{Target: "r", Value: "lo"}}},
					Else: []Statement{{Call: &Call{Static: "java.util.Objects", Method: "requireNonNull", Args: []string{"r"}}}},
				},
				{Return: ptr("r")},
			},
		}},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("decoded manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTOML(t *testing.T) {
	m, err := Decode(strings.NewReader(loopTOML), FormatTOML)
	require.NoError(t, err)

	require.Len(t, m.Fragments, 1)
	body := m.Fragments[0].Body
	require.Len(t, body, 2)
	assert.Equal(t, "for_each", body[0].Kind())
	assert.Equal(t, "return", body[1].Kind())
	if diff := cmp.Diff(&ForEach{Type: "java.lang.String", Name: "s", In: "names"}, body[0].ForEach); diff != "" {
		t.Errorf("for_each mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("fragments:\n  - name: A\n    bogus: 1\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("[[fragments]]\nname = \"A\"\nbogus = 1\n"), FormatTOML)
	require.Error(t, err)
	assert.True(t, errors.IsIllegalArgument(err))

	_, err = Decode(strings.NewReader(""), "json")
	assert.True(t, errors.IsIllegalArgument(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing name", "fragments:\n  - body: []\n"},
		{"duplicate file", "fragments:\n  - name: A\n  - name: A\n"},
		{"empty statement", "fragments:\n  - name: A\n    body:\n      - {}\n"},
		{"two kinds", "fragments:\n  - name: A\n    body:\n      - {throw: e, comment: c}\n"},
		{"then without if", "fragments:\n  - name: A\n    body:\n      - {throw: e, then: [{raw: x}]}\n"},
		{"nested empty", "fragments:\n  - name: A\n    body:\n      - block:\n          - {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src), FormatYAML)
			require.Error(t, err)
			assert.True(t, errors.IsIllegalArgument(err))
		})
	}
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]string{"a.yaml": FormatYAML, "b.YML": FormatYAML, "c.toml": FormatTOML} {
		got, err := FormatOf(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FormatOf("d.json")
	assert.True(t, errors.IsIllegalArgument(err))
}

func TestBuildRendersFragments(t *testing.T) {
	m, err := Decode(strings.NewReader(clampYAML), FormatYAML)
	require.NoError(t, err)

	files, err := Build(m)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "com/example/Clamp.java", files[0].Path())

	assert.Equal(t, "// file: com/example/Clamp.java\n"+clampJava, renderFiles(t, files))
}

func TestBuildTOML(t *testing.T) {
	m, err := Decode(strings.NewReader(loopTOML), FormatTOML)
	require.NoError(t, err)

	files, err := Build(m)
	require.NoError(t, err)
	want := "// file: demo/Loop.java\n" +
		"for (java.lang.String s : names) {\n" +
		"    print(s);\n" +
		"}\n" +
		"return;\n"
	assert.Equal(t, want, renderFiles(t, files))
}

func TestBuildClauses(t *testing.T) {
	f := Fragment{
		Name: "A",
		Contract: &Contract{Clauses: []Clause{
			{Keyword: "pure"},
			{Keyword: "model", Attributes: []Attribute{{Key: "name", Value: ptr("size")}, {Key: "ghost"}}},
			{Keyword: "invariant", Exprs: []string{"count >= 0"}},
		}},
	}
	root, err := BuildFragment(f)
	require.NoError(t, err)

	out, err := format.Render(root)
	require.NoError(t, err)
	want := "/*\n" +
		" @ pure\n" +
		" @ model name=\"size\" ghost\n" +
		" @ invariant (count >= 0)\n" +
		"@*/\n"
	assert.Equal(t, want, out)

	f.Contract.Clauses = append(f.Contract.Clauses, Clause{Keyword: "model", Exprs: []string{"x"}})
	_, err = BuildFragment(f)
	assert.True(t, errors.IsIllegalArgument(err))
}

func TestBuildStatementErrors(t *testing.T) {
	tests := []struct {
		name string
		stmt Statement
	}{
		{"assign to literal", Statement{Assign: &Assign{Target: "1", Value: "2"}}},
		{"unknown assign op", Statement{Assign: &Assign{Target: "x", Op: "%=", Value: "2"}}},
		{"unknown modifier", Statement{Decl: &Decl{Mods: []string{"sealed"}, Type: "int", Name: "x"}}},
		{"decl without type", Statement{Decl: &Decl{Name: "x"}}},
		{"call without method", Statement{Call: &Call{Target: "x"}}},
		{"call with target and static", Statement{Call: &Call{Target: "x", Static: "T", Method: "m"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFragment(Fragment{Name: "A", Body: []Statement{tt.stmt}})
			require.Error(t, err)
			assert.True(t, errors.IsIllegalArgument(err))
		})
	}
}

func TestBuildNestedBlocks(t *testing.T) {
	root, err := BuildFragment(Fragment{Name: "A", Body: []Statement{
		{Block: []Statement{{Decl: &Decl{Mods: []string{"final"}, Type: "long", Name: "n", Init: "3L"}}}},
		{Virtual: []Statement{{Comment: "spliced"}}},
		{While: "running", Body: []Statement{{Assign: &Assign{Target: "this.ticks", Op: "+=", Value: "1"}}}},
		{Throw: "new IllegalStateException()"},
	}})
	require.NoError(t, err)

	out, err := format.Render(root)
	require.NoError(t, err)
	want := "{\n" +
		"    final long n = 3L;\n" +
		"}\n" +
		"// spliced\n" +
		"while (running) {\n" +
		"    this.ticks += 1;\n" +
		"}\n" +
		"throw (new IllegalStateException());\n"
	assert.Equal(t, want, out)
}

func TestBuildStaticFiles(t *testing.T) {
	m := &Manifest{Static: []string{"res/app.properties"}}
	_, err := Build(m)
	assert.True(t, errors.IsIllegalArgument(err))

	fsys := fstest.MapFS{"res/app.properties": {Data: []byte("k=v\n")}}
	files, err := Build(m, WithStaticFS(fsys))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, files[0].IsResource())
	assert.Equal(t, "// file: res/app.properties\nk=v\n", renderFiles(t, files))
}

func TestExpression(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x", "x"},
		{" this.count ", "this.count"},
		{"a.b.c", "a.b.c"},
		{"42", "42"},
		{"-1", "-1"},
		{"7L", "7L"},
		{"2147483647", "2147483647"},
		{"-2147483648", "-2147483648"},
		{"2147483648", "2147483648L"},
		{"99999999999", "99999999999L"},
		{"-99999999999", "-99999999999L"},
		{"true", "true"},
		{"null", "null"},
		{`"hi"`, `"hi"`},
		{"a + b", "(a + b)"},
		{"f(x)", "(f(x))"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, err := format.Render(Expression(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jcm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(clampYAML), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Clamp", m.Fragments[0].Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jcm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fragments:\n  - name: A\n"), 0644))

	w, err := NewWatcher(path, 10*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan *Manifest, 4)
	w.OnChange(func(m *Manifest) error {
		select {
		case changed <- m:
		default:
		}
		return nil
	})
	w.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("fragments:\n  - name: A\n  - name: B\n"), 0644))

	deadline := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case m := <-changed:
			got = len(m.Fragments) == 2
		case <-deadline:
			t.Fatal("watcher did not report the change")
		}
	}

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcherReloadsDoNotOverlap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jcm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fragments:\n  - name: A\n"), 0644))

	w, err := NewWatcher(path, time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Stop()

	var active, peak, calls atomic.Int32
	w.OnChange(func(*Manifest) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		calls.Add(1)
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.reload())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(8), calls.Load())
	assert.Equal(t, int32(1), peak.Load())
}
