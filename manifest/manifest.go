// Package manifest reads declarative descriptions of code fragments from
// YAML or TOML and builds them into renderable blocks.
//
// A manifest lists fragments. Each fragment has an optional contract overlay
// and a body of statements:
//
//	package: com.example
//	fragments:
//	  - name: Clamp
//	    contract:
//	      requires: ["lo <= hi"]
//	    body:
//	      - if: "x < lo"
//	        then:
//	          - return: lo
//	      - return: x
package manifest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/teranos/jcodemodel/errors"
	"gopkg.in/yaml.v3"
)

// Manifest is the root document.
type Manifest struct {
	// Package prefixes default file paths, e.g. com.example -> com/example/.
	Package   string     `yaml:"package" toml:"package"`
	Fragments []Fragment `yaml:"fragments" toml:"fragments"`
	// Static files are copied verbatim, relative to the manifest directory.
	Static []string `yaml:"static" toml:"static"`
}

// Fragment is one generated file.
type Fragment struct {
	Name     string      `yaml:"name" toml:"name"`
	File     string      `yaml:"file" toml:"file"`
	Contract *Contract   `yaml:"contract" toml:"contract"`
	Body     []Statement `yaml:"body" toml:"body"`
}

// Contract describes the overlay printed above the body.
type Contract struct {
	Text     string   `yaml:"text" toml:"text"`
	Requires []string `yaml:"requires" toml:"requires"`
	Ensures  []string `yaml:"ensures" toml:"ensures"`
	Clauses  []Clause `yaml:"clauses" toml:"clauses"`
}

// Clause is a keyword with either expressions or attributes. A clause with
// neither prints the keyword alone.
type Clause struct {
	Keyword    string      `yaml:"keyword" toml:"keyword"`
	Exprs      []string    `yaml:"exprs" toml:"exprs"`
	Attributes []Attribute `yaml:"attributes" toml:"attributes"`
}

type Attribute struct {
	Key   string  `yaml:"key" toml:"key"`
	Value *string `yaml:"value" toml:"value"`
}

// Statement sets exactly one of its kind fields.
type Statement struct {
	Decl    *Decl       `yaml:"decl" toml:"decl"`
	Assign  *Assign     `yaml:"assign" toml:"assign"`
	Call    *Call       `yaml:"call" toml:"call"`
	If      string      `yaml:"if" toml:"if"`
	Then    []Statement `yaml:"then" toml:"then"`
	Else    []Statement `yaml:"else" toml:"else"`
	While   string      `yaml:"while" toml:"while"`
	ForEach *ForEach    `yaml:"for_each" toml:"for_each"`
	Body    []Statement `yaml:"body" toml:"body"`
	// Return is the returned expression; an empty string is a bare return.
	Return  *string     `yaml:"return" toml:"return"`
	Throw   string      `yaml:"throw" toml:"throw"`
	Comment string      `yaml:"comment" toml:"comment"`
	Raw     string      `yaml:"raw" toml:"raw"`
	Block   []Statement `yaml:"block" toml:"block"`
	Virtual []Statement `yaml:"virtual" toml:"virtual"`
}

type Decl struct {
	Mods []string `yaml:"mods" toml:"mods"`
	Type string   `yaml:"type" toml:"type"`
	Name string   `yaml:"name" toml:"name"`
	Init string   `yaml:"init" toml:"init"`
}

type Assign struct {
	Target string `yaml:"target" toml:"target"`
	Op     string `yaml:"op" toml:"op"`
	Value  string `yaml:"value" toml:"value"`
}

// Call invokes Method on Target, on the static type Static, or unqualified
// when both are empty.
type Call struct {
	Target string   `yaml:"target" toml:"target"`
	Static string   `yaml:"static" toml:"static"`
	Method string   `yaml:"method" toml:"method"`
	Args   []string `yaml:"args" toml:"args"`
}

type ForEach struct {
	Type string `yaml:"type" toml:"type"`
	Name string `yaml:"name" toml:"name"`
	In   string `yaml:"in" toml:"in"`
}

// Decoding formats
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatOf picks the decoding format from a file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.WithHint(
		errors.NewIllegalArgumentError("unknown manifest format for %s", path),
		"use a .yaml, .yml or .toml extension")
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}
	m, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return m, nil
}

// Decode parses a manifest. Unknown keys are errors.
func Decode(r io.Reader, format string) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "failed to parse yaml")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&m)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.NewIllegalArgumentError("unknown key %s", undecoded[0].String())
		}
	default:
		return nil, errors.NewIllegalArgumentError("unknown manifest format %q", format)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks fragment names and statement shapes.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool)
	for i, f := range m.Fragments {
		if f.Name == "" {
			return errors.NewIllegalArgumentError("fragments[%d]: name is required", i)
		}
		path := m.FilePath(f)
		if seen[path] {
			return errors.NewIllegalArgumentError("fragments[%d]: duplicate file %s", i, path)
		}
		seen[path] = true
		if err := validateStatements(f.Body, f.Name+".body"); err != nil {
			return err
		}
	}
	return nil
}

// FilePath is where a fragment renders to, relative to the output root.
func (m *Manifest) FilePath(f Fragment) string {
	if f.File != "" {
		return f.File
	}
	name := f.Name + ".java"
	if m.Package == "" {
		return name
	}
	return strings.ReplaceAll(m.Package, ".", "/") + "/" + name
}

// Kind names the statement's kind, or "" when none or several are set.
func (s Statement) Kind() string {
	var kinds []string
	add := func(set bool, name string) {
		if set {
			kinds = append(kinds, name)
		}
	}
	add(s.Decl != nil, "decl")
	add(s.Assign != nil, "assign")
	add(s.Call != nil, "call")
	add(s.If != "", "if")
	add(s.While != "", "while")
	add(s.ForEach != nil, "for_each")
	add(s.Return != nil, "return")
	add(s.Throw != "", "throw")
	add(s.Comment != "", "comment")
	add(s.Raw != "", "raw")
	add(s.Block != nil, "block")
	add(s.Virtual != nil, "virtual")
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

func validateStatements(stmts []Statement, at string) error {
	for i, s := range stmts {
		where := at + "[" + strconv.Itoa(i) + "]"
		kind := s.Kind()
		if kind == "" {
			return errors.WithHint(
				errors.NewIllegalArgumentError("%s: statement must set exactly one kind", where),
				"kinds: decl, assign, call, if, while, for_each, return, throw, comment, raw, block, virtual")
		}
		if (s.Then != nil || s.Else != nil) && kind != "if" {
			return errors.NewIllegalArgumentError("%s: then/else only apply to if", where)
		}
		if s.Body != nil && kind != "while" && kind != "for_each" {
			return errors.NewIllegalArgumentError("%s: body only applies to while and for_each", where)
		}
		for _, nested := range [][]Statement{s.Then, s.Else, s.Body, s.Block, s.Virtual} {
			if err := validateStatements(nested, where); err != nil {
				return err
			}
		}
	}
	return nil
}
