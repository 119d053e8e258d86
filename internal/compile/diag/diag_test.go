package diag

import (
	"errors"
	"strings"
	"testing"

	"codeberg.org/rileyq/lox/internal/compile/token"
)

type located struct {
	msg  string
	span token.Span
}

func (e *located) Error() string    { return e.msg }
func (e *located) Span() token.Span { return e.span }
func (e *located) Stage() string    { return "test error" }

func TestList(t *testing.T) {
	var l List
	var h Handler = &l
	h.Handle(Diagnostic{Severity: SeverityWarning, Err: errors.New("w")})
	if l.HasErrors() || l.Err() != nil {
		t.Fatal("warnings must not count as errors")
	}
	e := errors.New("e")
	h.Handle(Diagnostic{Severity: SeverityError, Err: e})
	if !l.HasErrors() || !errors.Is(l.Err(), e) || l.Len() != 2 {
		t.Fatalf("got %v", l.Diagnostics)
	}
	l.Reset()
	if l.Len() != 0 {
		t.Fatal("reset kept diagnostics")
	}
}

func TestRender(t *testing.T) {
	src := "one\ntwo three\nfour"
	err := &located{msg: "bad", span: token.Span{StartLine: 2, EndLine: 2, StartCol: 4, EndCol: 9}}
	want := `test error in x.lox: bad

   1 | one
   2 | two three
     |     ^^^^^
   3 | four
`
	if got := Render(src, "x.lox", err); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestRenderJoined(t *testing.T) {
	a := &located{msg: "a", span: token.Span{StartLine: 1, EndLine: 1, StartCol: 0, EndCol: 1}}
	b := &located{msg: "b"}
	got := Render("x", "", errors.Join(a, b, errors.New("plain")))
	parts := []string{"test error: a\n\n   1 | x\n     | ^\n", "test error: b\n", "plain\n"}
	if want := strings.Join(parts, "\n"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDiagnostic(t *testing.T) {
	d := Diagnostic{Severity: SeverityWarning, Err: &located{msg: "w"}}
	if got := RenderDiagnostic("", "", d); got != "warning: test error: w\n" {
		t.Errorf("got %q", got)
	}
}
