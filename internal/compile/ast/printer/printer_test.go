package printer

import (
	"strings"
	"testing"

	"codeberg.org/rileyq/lox/internal/compile/ast"
	"codeberg.org/rileyq/lox/internal/compile/token"
	"codeberg.org/rileyq/lox/internal/compile/value"
)

func op(typ token.Type) token.Token {
	return token.Token{Type: typ, Text: typ.String()}
}

func lit(v value.Value) *ast.Literal {
	return &ast.Literal{Value: v}
}

func TestDebug(t *testing.T) {
	x := &ast.Binary{
		Left:  &ast.Unary{Op: op(token.Minus), X: lit(value.Number(123))},
		Op:    op(token.Star),
		Right: &ast.Grouping{X: lit(value.Number(45.67))},
	}
	if got, want := Debug(x), "(* (- 123) (group 45.67))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRPN(t *testing.T) {
	x := &ast.Binary{
		Left:  &ast.Binary{Left: lit(value.Number(1)), Op: op(token.Plus), Right: lit(value.Number(2))},
		Op:    op(token.Star),
		Right: &ast.Binary{Left: lit(value.Number(4)), Op: op(token.Minus), Right: lit(value.Number(3))},
	}
	if got, want := Debug(x), "(* (+ 1 2) (- 4 3))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := RPN(x), "1 2 + 4 3 - *"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLiterals(t *testing.T) {
	for _, tt := range []struct {
		v    value.Value
		want string
	}{
		{value.Nil{}, "nil"},
		{value.Bool(true), "true"},
		{value.String("a \"b\"\n"), `"a \"b\"\n"`},
		{value.Number(0.5), "0.5"},
	} {
		if got := Debug(lit(tt.v)); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestStmts(t *testing.T) {
	var b strings.Builder
	err := Stmts(&b, []ast.Stmt{
		&ast.PrintStmt{X: &ast.Unary{Op: op(token.Bang), X: lit(value.Bool(false))}},
		&ast.ExprStmt{X: lit(value.String("x"))},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "(print (! false))\n\"x\";\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
