package parser

import (
	"errors"
	"fmt"
	"io"

	"codeberg.org/rileyq/lox/internal/compile/ast"
	"codeberg.org/rileyq/lox/internal/compile/diag"
	"codeberg.org/rileyq/lox/internal/compile/scanner"
	"codeberg.org/rileyq/lox/internal/compile/token"
	"codeberg.org/rileyq/lox/internal/compile/value"
)

const DefaultMaxDepth = 256

type Config struct {
	// MaxDepth bounds how deeply parentheses and unary operators may nest.
	// Zero means DefaultMaxDepth.
	MaxDepth int
	// Diagnostics receives lexical errors and warnings. They are reported
	// there rather than returned because the parser skips over them.
	Diagnostics diag.Handler
}

type Scanner interface {
	Scan() (*token.Token, error)
}

type Parser struct {
	scn      Scanner
	t        *token.Token
	diag     diag.Handler
	maxDepth int
	depth    int
	consumed int
	readErr  error
}

// New returns a parser positioned at the first token of scn.
func New(scn Scanner, cfg *Config) *Parser {
	p := &Parser{scn: scn, diag: diag.Discard, maxDepth: DefaultMaxDepth}
	if cfg != nil {
		if cfg.MaxDepth > 0 {
			p.maxDepth = cfg.MaxDepth
		}
		if cfg.Diagnostics != nil {
			p.diag = cfg.Diagnostics
		}
	}
	p.next()
	return p
}

func newScanner(src string, cfg *Config) *scanner.Scanner {
	var h diag.Handler
	if cfg != nil {
		h = cfg.Diagnostics
	}
	return scanner.NewString(src, scanner.WithDiagnostics(h))
}

// ParseString parses src as a single expression.
func ParseString(src string, cfg *Config) (ast.Expr, error) {
	return New(newScanner(src, cfg), cfg).Parse()
}

// ParseProgramString parses src as a sequence of statements.
func ParseProgramString(src string, cfg *Config) ([]ast.Stmt, error) {
	return New(newScanner(src, cfg), cfg).ParseProgram()
}

// Parse parses exactly one expression spanning the rest of the input. The
// first error fails the parse.
func (p *Parser) Parse() (ast.Expr, error) {
	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.t != nil {
		return nil, p.errorAt(InvalidExpression, *p.t, "expected end of input after expression")
	}
	if p.readErr != nil {
		return nil, p.fatalRead()
	}
	return x, nil
}

// ParseProgram parses statements until the input is exhausted. After an error
// the parser skips ahead to the next statement and carries on, so every error
// found is returned, joined. Fatal errors stop parsing at once.
func (p *Parser) ParseProgram() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	var errs []error

	for p.t != nil {
		start := p.consumed
		stmt, err := p.statement()
		if err == nil {
			stmts = append(stmts, stmt)
			continue
		}

		errs = append(errs, err)
		if IsFatal(err) {
			break
		}
		if p.consumed == start {
			p.next()
		}
		if !p.synchronize() {
			errs = append(errs, &Error{
				Kind: EOFWhileSynchronizing,
				Msg:  "reached end of input while looking for the next statement",
			})
			break
		}
	}

	if p.readErr != nil {
		errs = append(errs, p.fatalRead())
	}
	return stmts, errors.Join(errs...)
}

func (p *Parser) statement() (ast.Stmt, error) {
	if p.t.Type == token.Print {
		kw := p.t.Span
		p.next()
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.semicolon("after value"); err != nil {
			return nil, err
		}
		return &ast.PrintStmt{Print: kw, X: x}, nil
	}

	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.semicolon("after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x}, nil
}

func (p *Parser) semicolon(context string) error {
	if p.t == nil {
		return &Error{Kind: MissingSemicolon, Msg: "expected ';' " + context + ", found end of input"}
	}
	if p.accept(token.Semicolon) != nil {
		return nil
	}
	return p.errorAt(MissingSemicolon, *p.t, "expected ';' "+context)
}

// synchronize discards tokens up to and including the next ';', or up to a
// token that starts a statement. It reports false if the input ran out first.
func (p *Parser) synchronize() bool {
	for p.t != nil {
		if p.accept(token.Semicolon) != nil {
			return true
		}
		if p.t.Type.StartsStatement() {
			return true
		}
		p.next()
	}
	return false
}

func (p *Parser) expression() (ast.Expr, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	return p.binary(token.PrecedenceEquality)
}

// binary parses a left-associative chain of operators at precedence prec,
// with operands at the next level up.
func (p *Parser) binary(prec token.Precedence) (ast.Expr, error) {
	if prec > token.PrecedenceFactor {
		return p.unary()
	}

	left, err := p.binary(prec + 1)
	if err != nil {
		return nil, err
	}
	for p.t != nil && p.t.Type.Precedence() == prec {
		op := *p.t
		p.next()
		right, err := p.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.t == nil || p.t.Type != token.Bang && p.t.Type != token.Minus {
		return p.primary()
	}

	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	op := *p.t
	p.next()
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, X: x}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	if p.t == nil {
		return nil, p.eof("while parsing an expression")
	}

	// The offending token is left in place so that recovery can see it.
	tok := *p.t
	switch tok.Type {
	case token.True:
		p.next()
		return &ast.Literal{Value: value.Bool(true), At: tok.Span}, nil
	case token.False:
		p.next()
		return &ast.Literal{Value: value.Bool(false), At: tok.Span}, nil
	case token.Nil:
		p.next()
		return &ast.Literal{Value: value.Nil{}, At: tok.Span}, nil
	case token.Number, token.String:
		p.next()
		return &ast.Literal{Value: tok.Literal, At: tok.Span}, nil
	case token.OpenParen:
		p.next()
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.t == nil {
			return nil, p.eof("while a parenthesis was open")
		}
		closing := p.accept(token.CloseParen)
		if closing == nil {
			return nil, p.errorAt(UnclosedParentheses, *p.t, "expected a closing parenthesis")
		}
		return &ast.Grouping{X: x, Lparen: tok.Span, Rparen: closing.Span}, nil
	default:
		return nil, p.errorAt(InvalidExpression, tok, "expected a literal value or an opening parenthesis")
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		err := &Error{Kind: Fatal, Msg: fmt.Sprintf("expression nested more than %d levels deep", p.maxDepth)}
		if p.t != nil {
			tok := *p.t
			err.Tok = &tok
		}
		return err
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) accept(typ token.Type) *token.Token {
	if p.t == nil {
		return nil
	}

	if p.t.Type == typ {
		t := p.t
		p.next()
		return t
	}
	return nil
}

// next advances to the following token. Lexical errors are handed to the
// diagnostics handler and skipped.
func (p *Parser) next() {
	for {
		t, err := p.scn.Scan()
		if err == nil {
			p.t = t
			p.consumed++
			return
		}

		var lexErr *scanner.Error
		if errors.As(err, &lexErr) {
			p.diag.Handle(diag.Diagnostic{Severity: diag.SeverityError, Err: err})
			continue
		}

		p.t = nil
		if !errors.Is(err, io.EOF) && p.readErr == nil {
			p.readErr = err
		}
		return
	}
}

func (p *Parser) eof(context string) error {
	if p.readErr != nil {
		return p.fatalRead()
	}
	return &Error{Kind: UnexpectedEOF, Msg: context}
}

func (p *Parser) fatalRead() error {
	return &Error{Kind: Fatal, Msg: "reading source", Err: p.readErr}
}

func (p *Parser) errorAt(kind Kind, tok token.Token, msg string) error {
	return &Error{Kind: kind, Msg: msg, Tok: &tok}
}
