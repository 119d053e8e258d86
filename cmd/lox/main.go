// Command lox evaluates lox expressions, either from a script file, from the
// command line or interactively.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"codeberg.org/rileyq/lox/internal/compile/ast"
	"codeberg.org/rileyq/lox/internal/compile/ast/printer"
	"codeberg.org/rileyq/lox/internal/compile/diag"
	"codeberg.org/rileyq/lox/internal/compile/scanner"
	"codeberg.org/rileyq/lox/internal/compile/token"
	"codeberg.org/rileyq/lox/internal/config"
	"codeberg.org/rileyq/lox/internal/interp"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitData    = 65
	exitRuntime = 70
	exitIO      = 74
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type output int

const (
	outputValue output = iota
	outputAST
	outputRPN
)

type runner struct {
	cfg    *config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
	output output

	// src and name describe the source being run, for rendering warnings.
	src  string
	name string
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: lox [flags] [script]")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "read settings from this YAML `file`")
	expr := fs.String("e", "", "evaluate `expr` and print its value")
	printAST := fs.Bool("print-ast", false, "print the parsed tree instead of evaluating")
	rpn := fs.Bool("rpn", false, "print the parsed tree in postfix form instead of evaluating")
	verbose := fs.Bool("v", false, "log debug output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 || *printAST && *rpn || *expr != "" && fs.NArg() > 0 {
		fs.Usage()
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}
	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}

	r := &runner{
		cfg:    cfg,
		log:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		stdout: stdout,
		stderr: stderr,
	}
	switch {
	case *printAST:
		r.output = outputAST
	case *rpn:
		r.output = outputRPN
	}

	switch {
	case *expr != "":
		return r.eval("-e", *expr)
	case fs.NArg() == 1:
		return r.file(fs.Arg(0))
	default:
		return r.repl()
	}
}

func (r *runner) interpreter(out io.Writer) *interp.Interpreter {
	in := interp.New(r.cfg, out, diag.HandlerFunc(r.diagnostic))
	in.Log = r.log
	return in
}

// diagnostic prints warnings as they come. Errors are rendered once the run
// fails.
func (r *runner) diagnostic(d diag.Diagnostic) {
	if d.Severity != diag.SeverityWarning {
		r.log.Debug("diagnostic", "severity", d.Severity, "err", d.Err)
		return
	}
	fmt.Fprint(r.stderr, diag.RenderDiagnostic(r.src, r.name, d))
}

func (r *runner) fail(err error) int {
	var ierr *interp.Error
	if errors.As(err, &ierr) {
		fmt.Fprint(r.stderr, ierr.Render())
	} else {
		fmt.Fprintln(r.stderr, err)
	}

	switch interp.StageOf(err) {
	case interp.StageLexical, interp.StageParse:
		return exitData
	case interp.StageRuntime:
		return exitRuntime
	default:
		return exitIO
	}
}

// eval handles one expression: it is printed in the selected form, or
// evaluated and its value printed.
func (r *runner) eval(name, src string) int {
	r.name, r.src = name, src
	in := r.interpreter(r.stdout)

	if r.output != outputValue {
		x, err := in.Parse(name, src)
		if err != nil {
			return r.fail(err)
		}
		r.printExpr(x)
		return exitOK
	}

	v, err := in.Eval(name, src)
	if err != nil {
		return r.fail(err)
	}
	fmt.Fprintln(r.stdout, v)
	return exitOK
}

func (r *runner) printExpr(x ast.Expr) {
	if r.output == outputRPN {
		printer.FprintRPN(r.stdout, x)
	} else {
		printer.Fprint(r.stdout, x)
	}
	fmt.Fprintln(r.stdout)
}

func (r *runner) file(path string) int {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(r.stderr, err)
		return exitIO
	}
	r.name, r.src = path, string(b)
	r.log.Debug("running script", "path", path, "bytes", len(b))

	in := r.interpreter(r.stdout)
	if r.output != outputValue {
		return r.printProgram(in)
	}

	if err := in.Exec(path, r.src); err != nil {
		return r.fail(err)
	}
	return exitOK
}

func (r *runner) printProgram(in *interp.Interpreter) int {
	stmts, err := in.ParseProgram(r.name, r.src)
	if err != nil {
		return r.fail(err)
	}

	if r.output == outputAST {
		if err := printer.Stmts(r.stdout, stmts); err != nil {
			return r.fail(err)
		}
		return exitOK
	}
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *ast.ExprStmt:
			r.printExpr(stmt.X)
		case *ast.PrintStmt:
			printer.FprintRPN(r.stdout, stmt.X)
			fmt.Fprintln(r.stdout, " print")
		}
	}
	return exitOK
}

func (r *runner) repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath, err := r.cfg.HistoryPath()
	if err != nil {
		r.log.Warn("history disabled", "err", err)
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				r.log.Warn("saving history", "err", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	for {
		src, ok := r.read(ln)
		if !ok {
			fmt.Fprintln(r.stdout)
			return exitOK
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit":
			return exitOK
		}
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			fmt.Fprintln(r.stderr, "unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		r.eval("<stdin>", src)
	}
}

// read prompts until the input no longer has an unclosed parenthesis. It
// reports false at end of input.
func (r *runner) read(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := r.cfg.Prompt
		if b.Len() > 0 {
			prompt = r.cfg.ContinuationPrompt
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			r.log.Error("reading input", "err", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !unbalanced(b.String()) {
			return b.String(), true
		}
	}
}

// unbalanced reports whether src opens more parentheses than it closes.
func unbalanced(src string) bool {
	toks, _, err := scanner.NewString(src).All()
	if err != nil {
		return false
	}
	depth := 0
	for _, tok := range toks {
		switch tok.Type {
		case token.OpenParen:
			depth++
		case token.CloseParen:
			depth--
		}
	}
	return depth > 0
}
