package eval

import (
	"fmt"

	"codeberg.org/rileyq/lox/internal/compile/token"
)

// Kind classifies runtime errors. Each Kind is itself an error so callers can
// match with errors.Is.
type Kind int

const (
	BadNumericalNegation Kind = iota + 1
	BadAddition
	BadSubtraction
	BadMultiplication
	BadDivision
	BadStringRepCount
	BadComparison
)

func (k Kind) String() string {
	switch k {
	case BadNumericalNegation:
		return "bad numerical negation"
	case BadAddition:
		return "bad addition"
	case BadSubtraction:
		return "bad subtraction"
	case BadMultiplication:
		return "bad multiplication"
	case BadDivision:
		return "bad division"
	case BadStringRepCount:
		return "bad string repetition count"
	case BadComparison:
		return "bad comparison"
	default:
		panic(fmt.Sprintf("unexpected eval.Kind: %#v", k))
	}
}

func (k Kind) Error() string { return k.String() }

type Error struct {
	Kind Kind
	Msg  string
	// Op is the operator that failed.
	Op token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Op.Span, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func (e *Error) Span() token.Span { return e.Op.Span }

func (e *Error) Stage() string { return "runtime error" }
