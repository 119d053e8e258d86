// Package value defines the runtime values of the language. The same values
// are attached to literal tokens by the scanner and produced by the evaluator.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Value is one of Number, String, Bool or Nil.
type Value interface {
	// String renders the value the way the debug printer and the REPL show
	// it: strings are quoted and escaped.
	String() string

	value()
}

type Number float64

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type String string

func (s String) String() string { return Quote(string(s)) }

type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

type Nil struct{}

func (Nil) String() string { return "nil" }

func (Number) value() {}
func (String) value() {}
func (Bool) value()   {}
func (Nil) value()    {}

// Truthy reports whether v counts as true. Only false and nil are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Nil, nil:
		return false
	default:
		return true
	}
}

// Equal reports whether a and b are the same value. Values of different
// kinds are never equal and no coercion applies.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		return false
	}
}

// Text renders v without quoting strings.
func Text(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	return v.String()
}

// TypeName is the user facing name of v's kind.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Nil:
		return "nil"
	default:
		return "<invalid>"
	}
}

// Quote wraps s in double quotes, escaping control characters the scanner
// accepts as escapes along with backslashes and quotes.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
