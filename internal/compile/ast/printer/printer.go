// Package printer renders expression trees as text, either in a
// parenthesized prefix form or in reverse Polish notation.
package printer

import (
	"io"
	"strings"

	"codeberg.org/rileyq/lox/internal/compile/ast"
)

// Fprint writes x in prefix form, e.g. (* (- 123) (group 45.67)).
func Fprint(w io.Writer, x ast.Expr) error {
	_, err := io.WriteString(w, Debug(x))
	return err
}

// FprintRPN writes x in postfix form, e.g. 1 2 + 4 3 - *.
func FprintRPN(w io.Writer, x ast.Expr) error {
	_, err := io.WriteString(w, RPN(x))
	return err
}

// Stmts writes each statement on its own line in prefix form.
func Stmts(w io.Writer, stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		var line string
		switch stmt := stmt.(type) {
		case *ast.ExprStmt:
			line = Debug(stmt.X) + ";\n"
		case *ast.PrintStmt:
			line = "(print " + Debug(stmt.X) + ")\n"
		}
		_, err := io.WriteString(w, line)
		if err != nil {
			return err
		}
	}
	return nil
}

func Debug(x ast.Expr) string {
	s, _ := ast.Visit[string](debug{}, x)
	return s
}

func RPN(x ast.Expr) string {
	s, _ := ast.Visit[string](rpn{}, x)
	return s
}

type debug struct{}

func (p debug) parenthesize(name string, xs ...ast.Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, x := range xs {
		s, _ := ast.Visit[string](p, x)
		b.WriteString(" ")
		b.WriteString(s)
	}
	b.WriteString(")")
	return b.String()
}

func (debug) VisitLiteral(x *ast.Literal) (string, error) {
	return x.Value.String(), nil
}

func (p debug) VisitGrouping(x *ast.Grouping) (string, error) {
	return p.parenthesize("group", x.X), nil
}

func (p debug) VisitUnary(x *ast.Unary) (string, error) {
	return p.parenthesize(x.Op.Text, x.X), nil
}

func (p debug) VisitBinary(x *ast.Binary) (string, error) {
	return p.parenthesize(x.Op.Text, x.Left, x.Right), nil
}

type rpn struct{}

func (p rpn) postfix(name string, xs ...ast.Expr) string {
	var b strings.Builder
	for _, x := range xs {
		s, _ := ast.Visit[string](p, x)
		b.WriteString(s)
		b.WriteString(" ")
	}
	b.WriteString(name)
	return b.String()
}

func (rpn) VisitLiteral(x *ast.Literal) (string, error) {
	return x.Value.String(), nil
}

func (p rpn) VisitGrouping(x *ast.Grouping) (string, error) {
	return ast.Visit[string](p, x.X)
}

func (p rpn) VisitUnary(x *ast.Unary) (string, error) {
	return p.postfix(x.Op.Text, x.X), nil
}

func (p rpn) VisitBinary(x *ast.Binary) (string, error) {
	return p.postfix(x.Op.Text, x.Left, x.Right), nil
}
