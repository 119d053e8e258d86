package ast

import "fmt"

// Visitor has one method per expression variant. Printers and the evaluator
// implement it with their own result type.
type Visitor[T any] interface {
	VisitLiteral(x *Literal) (T, error)
	VisitGrouping(x *Grouping) (T, error)
	VisitUnary(x *Unary) (T, error)
	VisitBinary(x *Binary) (T, error)
}

// Visit dispatches x to the matching method of v.
func Visit[T any](v Visitor[T], x Expr) (T, error) {
	switch x := x.(type) {
	case *Literal:
		return v.VisitLiteral(x)
	case *Grouping:
		return v.VisitGrouping(x)
	case *Unary:
		return v.VisitUnary(x)
	case *Binary:
		return v.VisitBinary(x)
	default:
		panic(fmt.Sprintf("unexpected ast.Expr: %#v", x))
	}
}

// Inspect walks x in pre-order, calling f for each expression. Children are
// skipped when f returns false.
func Inspect(x Expr, f func(Expr) bool) {
	if x == nil || !f(x) {
		return
	}
	switch x := x.(type) {
	case *Grouping:
		Inspect(x.X, f)
	case *Unary:
		Inspect(x.X, f)
	case *Binary:
		Inspect(x.Left, f)
		Inspect(x.Right, f)
	}
}
