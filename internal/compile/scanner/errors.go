package scanner

import (
	"fmt"

	"codeberg.org/rileyq/lox/internal/compile/token"
)

// Kind classifies lexical errors. Each Kind is itself an error so callers can
// match with errors.Is.
type Kind int

const (
	UnmatchedCharacter Kind = iota + 1
	UnterminatedString
	InvalidEscape
	// NumberParseFailure means the scanner accepted a numeral that
	// strconv rejected. The grammar rules it out.
	NumberParseFailure
)

func (k Kind) String() string {
	switch k {
	case UnmatchedCharacter:
		return "unmatched character"
	case UnterminatedString:
		return "unterminated string"
	case InvalidEscape:
		return "invalid escape"
	case NumberParseFailure:
		return "internal error: number parse failure"
	default:
		panic(fmt.Sprintf("unexpected scanner.Kind: %#v", k))
	}
}

func (k Kind) Error() string { return k.String() }

type Error struct {
	Kind Kind
	Msg  string
	At   token.Span
	// Partial holds the string content read before the input ended, for
	// UnterminatedString.
	Partial string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.At, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func (e *Error) Span() token.Span { return e.At }

func (e *Error) Stage() string { return "lexical error" }
