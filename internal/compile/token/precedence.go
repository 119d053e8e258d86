package token

type Precedence int

const (
	PrecedenceNone Precedence = iota
	PrecedenceEquality
	PrecedenceComparison
	PrecedenceTerm
	PrecedenceFactor
)

// Precedence is the binding strength of t in binary operator position.
func (t Type) Precedence() Precedence {
	switch t {
	case EqualEqual, BangEqual:
		return PrecedenceEquality
	case Greater, GreaterEqual, Less, LessEqual:
		return PrecedenceComparison
	case Plus, Minus:
		return PrecedenceTerm
	case Star, Slash:
		return PrecedenceFactor
	default:
		return PrecedenceNone
	}
}
