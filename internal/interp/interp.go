// Package interp runs source text through the scanner, parser and evaluator.
package interp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"codeberg.org/rileyq/lox/internal/compile/ast"
	"codeberg.org/rileyq/lox/internal/compile/diag"
	"codeberg.org/rileyq/lox/internal/compile/eval"
	"codeberg.org/rileyq/lox/internal/compile/parser"
	"codeberg.org/rileyq/lox/internal/compile/scanner"
	"codeberg.org/rileyq/lox/internal/compile/value"
	"codeberg.org/rileyq/lox/internal/config"
)

type Interpreter struct {
	cfg  *config.Config
	out  io.Writer
	diag diag.Handler

	// Log receives debug output about each run. It defaults to discarding.
	Log *slog.Logger
}

// New returns an interpreter that writes print output to out and passes every
// diagnostic, including lexical errors, to h. A nil cfg means config.Default.
func New(cfg *config.Config, out io.Writer, h diag.Handler) *Interpreter {
	if cfg == nil {
		cfg = config.Default()
	}
	if h == nil {
		h = diag.Discard
	}
	return &Interpreter{cfg: cfg, out: out, diag: h, Log: slog.New(slog.DiscardHandler)}
}

// Error ties a failure to the source it came from.
type Error struct {
	Name string
	Src  string
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Render formats the error with source snippets.
func (e *Error) Render() string {
	return diag.Render(e.Src, e.Name, e.Err)
}

// Eval evaluates src as a single expression. Lexical errors prevent
// evaluation and are returned along with any parse error.
func (in *Interpreter) Eval(name, src string) (value.Value, error) {
	var lex diag.List
	pcfg := in.parserConfig(&lex)

	x, err := parser.ParseString(src, pcfg)
	if err := errors.Join(lex.Err(), err); err != nil {
		return nil, &Error{Name: name, Src: src, Err: err}
	}

	in.Log.Debug("evaluating", "source", name, "nodes", count(x))
	v, err := eval.Evaluate(x)
	if err != nil {
		return nil, &Error{Name: name, Src: src, Err: err}
	}
	return v, nil
}

// Exec runs src as a sequence of statements. Nothing runs unless the whole
// program scans and parses cleanly. Execution stops at the first runtime
// error.
func (in *Interpreter) Exec(name, src string) error {
	stmts, err := in.ParseProgram(name, src)
	if err != nil {
		return err
	}

	in.Log.Debug("executing", "source", name, "statements", len(stmts))
	for _, stmt := range stmts {
		if err := in.exec(stmt); err != nil {
			return &Error{Name: name, Src: src, Err: err}
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.ExprStmt:
		_, err := eval.Evaluate(stmt.X)
		return err
	case *ast.PrintStmt:
		v, err := eval.Evaluate(stmt.X)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(in.out, value.Text(v))
		return err
	default:
		panic(fmt.Sprintf("unexpected ast.Stmt: %#v", stmt))
	}
}

// Parse parses src as a single expression without evaluating it.
func (in *Interpreter) Parse(name, src string) (ast.Expr, error) {
	var lex diag.List
	x, err := parser.ParseString(src, in.parserConfig(&lex))
	if err := errors.Join(lex.Err(), err); err != nil {
		return nil, &Error{Name: name, Src: src, Err: err}
	}
	return x, nil
}

// ParseProgram parses src as statements without running them.
func (in *Interpreter) ParseProgram(name, src string) ([]ast.Stmt, error) {
	var lex diag.List
	stmts, err := parser.ParseProgramString(src, in.parserConfig(&lex))
	if err := errors.Join(lex.Err(), err); err != nil {
		return nil, &Error{Name: name, Src: src, Err: err}
	}
	return stmts, nil
}

// parserConfig sends diagnostics to both lex and the interpreter's handler.
func (in *Interpreter) parserConfig(lex *diag.List) *parser.Config {
	pcfg := in.cfg.ParserConfig()
	pcfg.Diagnostics = diag.HandlerFunc(func(d diag.Diagnostic) {
		lex.Handle(d)
		in.diag.Handle(d)
	})
	return pcfg
}

func count(x ast.Expr) int {
	n := 0
	ast.Inspect(x, func(ast.Expr) bool {
		n++
		return true
	})
	return n
}

type Stage int

const (
	StageNone Stage = iota
	StageLexical
	StageParse
	StageRuntime
	StageIO
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageLexical:
		return "lexical"
	case StageParse:
		return "parse"
	case StageRuntime:
		return "runtime"
	case StageIO:
		return "io"
	default:
		panic(fmt.Sprintf("unexpected interp.Stage: %#v", s))
	}
}

// StageOf reports which stage err came from. When errors from several stages
// are joined the earliest stage wins. Errors from no stage count as I/O.
func StageOf(err error) Stage {
	if err == nil {
		return StageNone
	}
	var evalErr *eval.Error
	var parseErr *parser.Error
	var lexErr *scanner.Error
	switch {
	case errors.As(err, &lexErr):
		return StageLexical
	case errors.As(err, &parseErr):
		return StageParse
	case errors.As(err, &evalErr):
		return StageRuntime
	default:
		return StageIO
	}
}
