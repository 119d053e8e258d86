// Package diag collects diagnostics produced while scanning and parsing and
// renders errors as annotated source snippets.
package diag

import (
	"errors"
	"fmt"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		panic(fmt.Sprintf("unexpected diag.Severity: %#v", s))
	}
}

type Diagnostic struct {
	Severity Severity
	Err      error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v", d.Severity, d.Err)
}

// Handler receives diagnostics as they are produced.
type Handler interface {
	Handle(Diagnostic)
}

type HandlerFunc func(Diagnostic)

func (f HandlerFunc) Handle(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Handler = HandlerFunc(func(Diagnostic) {})

// List accumulates diagnostics in the order they were reported.
type List struct {
	Diagnostics []Diagnostic
}

func (l *List) Handle(d Diagnostic) {
	l.Diagnostics = append(l.Diagnostics, d)
}

func (l *List) Len() int { return len(l.Diagnostics) }

// HasErrors reports whether any error severity diagnostic was recorded.
func (l *List) HasErrors() bool {
	for _, d := range l.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err joins the recorded errors, ignoring warnings.
func (l *List) Err() error {
	var errs []error
	for _, d := range l.Diagnostics {
		if d.Severity == SeverityError {
			errs = append(errs, d.Err)
		}
	}
	return errors.Join(errs...)
}

func (l *List) Reset() {
	l.Diagnostics = l.Diagnostics[:0]
}
