package token

import (
	"fmt"

	"codeberg.org/rileyq/lox/internal/compile/value"
)

//go:generate go run ../../../tools/generate_tokens.go tokens.yaml type.go

type Token struct {
	Type Type
	Text string
	// Literal is set for Number and String tokens.
	Literal value.Value
	Span    Span
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("[%s] %s: %s", t.Span, t.Type, t.Literal)
	}
	return fmt.Sprintf("[%s] %s", t.Span, t.Type)
}

// Lookup maps an identifier to its keyword type, or Identifier.
func Lookup(ident string) Type {
	if typ, ok := Keywords[ident]; ok {
		return typ
	}
	return Identifier
}

// StartsStatement reports whether t begins a statement. The parser resumes
// after an error at such a token.
func (t Type) StartsStatement() bool {
	switch t {
	case Class, Fun, Var, For, If, While, Print, Return:
		return true
	default:
		return false
	}
}
