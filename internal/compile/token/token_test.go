package token

import (
	"testing"

	"codeberg.org/rileyq/lox/internal/compile/value"
)

func TestSpanString(t *testing.T) {
	for _, tt := range []struct {
		span Span
		want string
	}{
		{Span{StartLine: 1, EndLine: 1, StartCol: 3, EndCol: 4}, "1:3"},
		{Span{StartLine: 1, EndLine: 1, StartCol: 3, EndCol: 3}, "1:3"},
		{Span{StartLine: 1, EndLine: 1, StartCol: 0, EndCol: 3}, "1:0-2"},
		{Span{StartLine: 2, EndLine: 4, StartCol: 0, EndCol: 1}, "2-4:0"},
		{Span{StartLine: 2, EndLine: 4, StartCol: 1, EndCol: 5}, "2-4:1-4"},
	} {
		if got := tt.span.String(); got != tt.want {
			t.Errorf("%#v: got %s, want %s", tt.span, got, tt.want)
		}
	}
}

func TestSpanTracking(t *testing.T) {
	s := NewSpan()
	s.Advance()
	s.Advance()
	if got := s.String(); got != "1:0-1" {
		t.Errorf("got %s", got)
	}
	s.Reset()
	s.Advance()
	if got := s.String(); got != "1:2" {
		t.Errorf("got %s", got)
	}
	s.Newline()
	s.Advance()
	if s.StartLine != 1 || s.EndLine != 2 || s.EndCol != 1 {
		t.Errorf("got %#v", s)
	}
	s.Reset()
	if s.StartLine != 2 || s.StartCol != 1 {
		t.Errorf("got %#v", s)
	}
}

func TestJoin(t *testing.T) {
	a := Span{StartLine: 1, EndLine: 1, StartCol: 4, EndCol: 5}
	b := Span{StartLine: 2, EndLine: 2, StartCol: 0, EndCol: 3}
	want := Span{StartLine: 1, EndLine: 2, StartCol: 4, EndCol: 3}
	if got := Join(a, b); got != want {
		t.Errorf("got %#v", got)
	}
	if got := Join(b, a); got != want {
		t.Errorf("got %#v", got)
	}
	if got := Join(Span{}, a); got != a {
		t.Errorf("got %#v", got)
	}
}

func TestTypes(t *testing.T) {
	if Lookup("while") != While || Lookup("whilst") != Identifier {
		t.Error("keyword lookup")
	}
	if Fixed[">="] != GreaterEqual || Fixed["("] != OpenParen {
		t.Error("fixed lookup")
	}
	if got := Number.String(); got != "<number>" {
		t.Errorf("got %s", got)
	}
	if got := Type(-1).String(); got != "<invalid>" {
		t.Errorf("got %s", got)
	}
	if !Print.StartsStatement() || Plus.StartsStatement() {
		t.Error("statement starts")
	}
	if Star.Precedence() <= Plus.Precedence() || Less.Precedence() <= EqualEqual.Precedence() {
		t.Error("precedence order")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: String, Text: `"a"`, Literal: value.String("a"), Span: Span{StartLine: 1, EndLine: 1, EndCol: 3}}
	if got := tok.String(); got != `[1:0-2] <string>: "a"` {
		t.Errorf("got %s", got)
	}
	tok = Token{Type: Plus, Text: "+", Span: Span{StartLine: 1, EndLine: 1, StartCol: 4, EndCol: 5}}
	if got := tok.String(); got != "[1:4] +" {
		t.Errorf("got %s", got)
	}
}
