// Package expr is the expression algebra of the code model.
//
// Expressions are immutable: every operator returns a new node and never
// touches its operands. Operators print fully parenthesised, so the rendered
// text never depends on the target language's precedence table.
package expr

import (
	"strconv"
	"strings"

	"github.com/teranos/jcodemodel/errors"
	"github.com/teranos/jcodemodel/format"
)

// Expression is a node in expression position.
type Expression interface {
	format.Generable
}

// literal is a pre-encoded constant. It is comparable, which is what lets
// the boolean operators recognise True and False.
type literal struct {
	text string
}

func (l literal) Generate(f *format.Formatter) { f.Print(l.text) }

var (
	True  Expression = literal{"true"}
	False Expression = literal{"false"}
	Null  Expression = literal{"null"}
	This  Expression = literal{"this"}
	Super Expression = literal{"super"}
)

// Int is an int literal.
func Int(v int) Expression { return literal{strconv.Itoa(v)} }

// Long is a long literal, e.g. 5L.
func Long(v int64) Expression { return literal{strconv.FormatInt(v, 10) + "L"} }

// Bool is a boolean literal.
func Bool(v bool) Expression {
	if v {
		return True
	}
	return False
}

// Float is a float literal, e.g. 1.5F.
func Float(v float32) Expression {
	return literal{strconv.FormatFloat(float64(v), 'g', -1, 32) + "F"}
}

// Double is a double literal, e.g. 1.5D.
func Double(v float64) Expression {
	return literal{strconv.FormatFloat(v, 'g', -1, 64) + "D"}
}

// Str is a string literal, quoted and escaped.
func Str(v string) Expression { return literal{quote(v, '"')} }

// Char is a char literal.
func Char(v rune) Expression { return literal{quote(string(v), '\'')} }

// Literal is the literal factory: it wraps a raw Go value into an
// expression. Expressions pass through unchanged. int64 maps to a long
// literal, rune to a char literal, other integer kinds to int, nil to null.
func Literal(v any) (Expression, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case Expression:
		return x, nil
	case int:
		return Int(x), nil
	case int8:
		return Int(int(x)), nil
	case int16:
		return Int(int(x)), nil
	case rune:
		return Char(x), nil
	case uint8:
		return Int(int(x)), nil
	case uint16:
		return Int(int(x)), nil
	case int64:
		return Long(x), nil
	case string:
		return Str(x), nil
	case bool:
		return Bool(x), nil
	case float32:
		return Float(x), nil
	case float64:
		return Double(x), nil
	default:
		return nil, errors.NewIllegalArgumentError("no literal form for %T", v)
	}
}

func quote(s string, delim byte) string {
	var sb strings.Builder
	sb.WriteByte(delim)
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '"', '\'':
			if byte(r) == delim {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		default:
			if r < 0x20 || r == 0x7f {
				sb.WriteString(`\u`)
				hex := strconv.FormatInt(int64(r), 16)
				sb.WriteString(strings.Repeat("0", 4-len(hex)))
				sb.WriteString(hex)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte(delim)
	return sb.String()
}

type direct struct {
	source string
}

func (d direct) Generate(f *format.Formatter) {
	f.Print("(").Print(d.source).Print(")")
}

// Direct creates an expression from a raw code fragment, printed in
// parentheses. It bypasses the object model: nothing checks the fragment.
func Direct(source string) Expression {
	return direct{source: source}
}
