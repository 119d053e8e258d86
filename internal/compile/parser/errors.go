package parser

import (
	"errors"
	"fmt"

	"codeberg.org/rileyq/lox/internal/compile/token"
)

// Kind classifies parse errors. Each Kind is itself an error so callers can
// match with errors.Is.
type Kind int

const (
	InvalidExpression Kind = iota + 1
	UnclosedParentheses
	UnexpectedEOF
	EOFWhileSynchronizing
	MissingSemicolon
	// Fatal errors stop parsing without any attempt to recover.
	Fatal
)

func (k Kind) String() string {
	switch k {
	case InvalidExpression:
		return "invalid expression"
	case UnclosedParentheses:
		return "unclosed parentheses"
	case UnexpectedEOF:
		return "unexpected end of input"
	case EOFWhileSynchronizing:
		return "end of input while recovering from errors"
	case MissingSemicolon:
		return "missing semicolon"
	case Fatal:
		return "fatal error"
	default:
		panic(fmt.Sprintf("unexpected parser.Kind: %#v", k))
	}
}

func (k Kind) Error() string { return k.String() }

type Error struct {
	Kind Kind
	Msg  string
	// Tok is the token the parser was looking at, if any.
	Tok *token.Token
	// Err is the underlying cause of a Fatal error.
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Tok != nil {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Tok, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func (e *Error) Span() token.Span {
	if e.Tok == nil {
		return token.Span{}
	}
	return e.Tok.Span
}

func (e *Error) Stage() string { return "parse error" }

// IsFatal reports whether err, or any error it wraps, is a Fatal parse error.
func IsFatal(err error) bool {
	return errors.Is(err, Fatal)
}
