// Package eval reduces expression trees to values.
package eval

import (
	"fmt"
	"math"
	"strings"

	"codeberg.org/rileyq/lox/internal/compile/ast"
	"codeberg.org/rileyq/lox/internal/compile/token"
	"codeberg.org/rileyq/lox/internal/compile/value"
)

// MaxStringLen bounds the length in bytes of a string built by repetition.
const MaxStringLen = 1 << 26

// Evaluate reduces x to a value. Children are evaluated before their parent
// and the first failure aborts the whole evaluation.
func Evaluate(x ast.Expr) (value.Value, error) {
	return ast.Visit[value.Value](evaluator{}, x)
}

type evaluator struct{}

func (evaluator) VisitLiteral(x *ast.Literal) (value.Value, error) {
	return x.Value, nil
}

func (e evaluator) VisitGrouping(x *ast.Grouping) (value.Value, error) {
	return ast.Visit[value.Value](e, x.X)
}

func (e evaluator) VisitUnary(x *ast.Unary) (value.Value, error) {
	v, err := ast.Visit[value.Value](e, x.X)
	if err != nil {
		return nil, err
	}

	switch x.Op.Type {
	case token.Bang:
		return value.Bool(!value.Truthy(v)), nil
	case token.Minus:
		n, ok := v.(value.Number)
		if !ok {
			return nil, fail(BadNumericalNegation, x.Op, "cannot negate a %s", value.TypeName(v))
		}
		return -n, nil
	default:
		panic(fmt.Sprintf("unexpected unary operator: %s", x.Op.Type))
	}
}

func (e evaluator) VisitBinary(x *ast.Binary) (value.Value, error) {
	l, err := ast.Visit[value.Value](e, x.Left)
	if err != nil {
		return nil, err
	}
	r, err := ast.Visit[value.Value](e, x.Right)
	if err != nil {
		return nil, err
	}

	switch x.Op.Type {
	case token.EqualEqual:
		return value.Bool(value.Equal(l, r)), nil
	case token.BangEqual:
		return value.Bool(!value.Equal(l, r)), nil
	}

	l, r = coerce(l, r)

	switch l := l.(type) {
	case value.Number:
		if r, ok := r.(value.Number); ok {
			return arith(x.Op, l, r), nil
		}
	case value.String:
		switch r := r.(type) {
		case value.String:
			if x.Op.Type == token.Plus {
				return l + r, nil
			}
		case value.Number:
			if x.Op.Type == token.Star {
				return repeat(x.Op, l, r)
			}
		}
	}
	return nil, mismatch(x.Op, l, r)
}

// coerce turns Bools into Numbers when the other operand is a Number or Bool.
func coerce(l, r value.Value) (value.Value, value.Value) {
	_, lb := l.(value.Bool)
	_, rb := r.(value.Bool)
	if !lb && !rb || !numeric(l) || !numeric(r) {
		return l, r
	}
	return toNumber(l), toNumber(r)
}

func numeric(v value.Value) bool {
	switch v.(type) {
	case value.Number, value.Bool:
		return true
	default:
		return false
	}
}

func toNumber(v value.Value) value.Number {
	switch v := v.(type) {
	case value.Number:
		return v
	case value.Bool:
		if v {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unexpected value.Value: %#v", v))
	}
}

func arith(op token.Token, l, r value.Number) value.Value {
	switch op.Type {
	case token.Plus:
		return l + r
	case token.Minus:
		return l - r
	case token.Star:
		return l * r
	case token.Slash:
		return l / r
	case token.Greater:
		return value.Bool(l > r)
	case token.GreaterEqual:
		return value.Bool(l >= r)
	case token.Less:
		return value.Bool(l < r)
	case token.LessEqual:
		return value.Bool(l <= r)
	default:
		panic(fmt.Sprintf("unexpected binary operator: %s", op.Type))
	}
}

func repeat(op token.Token, s value.String, n value.Number) (value.Value, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Floor(f) {
		return nil, fail(BadStringRepCount, op, "cannot repeat a string %s times", n)
	}
	if f <= 0 || len(s) == 0 {
		return value.String(""), nil
	}
	if f > float64(MaxStringLen/len(s)) {
		return nil, fail(BadStringRepCount, op, "repeating a string of length %d %s times exceeds %d bytes", len(s), n, MaxStringLen)
	}
	return value.String(strings.Repeat(string(s), int(f))), nil
}

func mismatch(op token.Token, l, r value.Value) error {
	var kind Kind
	switch op.Type {
	case token.Plus:
		kind = BadAddition
	case token.Minus:
		kind = BadSubtraction
	case token.Star:
		kind = BadMultiplication
	case token.Slash:
		kind = BadDivision
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		kind = BadComparison
	default:
		panic(fmt.Sprintf("unexpected binary operator: %s", op.Type))
	}
	return fail(kind, op, "cannot apply %q to %s and %s", op.Text, value.TypeName(l), value.TypeName(r))
}

func fail(kind Kind, op token.Token, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Op: op}
}
