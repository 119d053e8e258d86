package ast

import (
	"codeberg.org/rileyq/lox/internal/compile/token"
	"codeberg.org/rileyq/lox/internal/compile/value"
)

type Node interface {
	Span() token.Span

	astNode()
}

// Expr is one of *Literal, *Grouping, *Unary or *Binary.
type Expr interface {
	Node

	astExpr()
}

// Stmt is one of *ExprStmt or *PrintStmt.
type Stmt interface {
	Node

	astStmt()
}

type Literal struct {
	Value value.Value
	At    token.Span
}

func (x *Literal) Span() token.Span { return x.At }

func (*Literal) astNode() {}
func (*Literal) astExpr() {}

type Grouping struct {
	X      Expr
	Lparen token.Span
	Rparen token.Span
}

func (x *Grouping) Span() token.Span { return token.Join(x.Lparen, x.Rparen) }

func (*Grouping) astNode() {}
func (*Grouping) astExpr() {}

type Unary struct {
	Op token.Token
	X  Expr
}

func (x *Unary) Span() token.Span { return token.Join(x.Op.Span, x.X.Span()) }

func (*Unary) astNode() {}
func (*Unary) astExpr() {}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (x *Binary) Span() token.Span { return token.Join(x.Left.Span(), x.Right.Span()) }

func (*Binary) astNode() {}
func (*Binary) astExpr() {}

type ExprStmt struct{ X Expr }

func (stmt *ExprStmt) Span() token.Span { return stmt.X.Span() }

func (*ExprStmt) astNode() {}
func (*ExprStmt) astStmt() {}

type PrintStmt struct {
	Print token.Span
	X     Expr
}

func (stmt *PrintStmt) Span() token.Span { return token.Join(stmt.Print, stmt.X.Span()) }

func (*PrintStmt) astNode() {}
func (*PrintStmt) astStmt() {}
