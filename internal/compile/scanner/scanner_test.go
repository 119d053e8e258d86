package scanner

import (
	"errors"
	"strconv"
	"testing"

	"codeberg.org/rileyq/lox/internal/compile/diag"
	"codeberg.org/rileyq/lox/internal/compile/token"
	"codeberg.org/rileyq/lox/internal/compile/value"
)

const src = `
// a comment
(1 + 2.5) * "two" != nil;
print !true >= _foo_1
`

func scanAll(t *testing.T, src string, opts ...Option) ([]*token.Token, []error) {
	t.Helper()
	toks, errs, err := NewString(src, opts...).All()
	if err != nil {
		t.Fatal(err)
	}
	return toks, errs
}

func types(toks []*token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestScanner(t *testing.T) {
	toks, errs := scanAll(t, src)
	if len(errs) > 0 {
		t.Fatal(errs)
	}

	want := []token.Type{
		token.OpenParen, token.Number, token.Plus, token.Number, token.CloseParen,
		token.Star, token.String, token.BangEqual, token.Nil, token.Semicolon,
		token.Print, token.Bang, token.True, token.GreaterEqual, token.Identifier,
	}
	got := types(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}

	if toks[3].Literal != value.Number(2.5) {
		t.Errorf("got literal %v, want 2.5", toks[3].Literal)
	}
	if toks[6].Literal != value.String("two") {
		t.Errorf("got literal %v, want \"two\"", toks[6].Literal)
	}
	if toks[14].Text != "_foo_1" {
		t.Errorf("got identifier %q", toks[14].Text)
	}

	for _, tok := range toks {
		t.Logf("%s", tok)
	}
}

func TestSkippedInputYieldsNoTokens(t *testing.T) {
	for _, src := range []string{"", "   \t\r\n\n", "// only a comment", "  // c1\n// c2\n"} {
		toks, errs := scanAll(t, src)
		if len(toks) != 0 || len(errs) != 0 {
			t.Errorf("%q: got %v tokens and %v errors", src, toks, errs)
		}
	}
}

func TestNumbers(t *testing.T) {
	for _, text := range []string{"0", "7", "123", "3.14", "10.0", "000012.50", "98765432109876543210"} {
		toks, errs := scanAll(t, text)
		if len(errs) != 0 || len(toks) != 1 {
			t.Fatalf("%q: got %v, %v", text, toks, errs)
		}
		want, _ := strconv.ParseFloat(text, 64)
		if toks[0].Literal != value.Number(want) {
			t.Errorf("%q: got %v, want %v", text, toks[0].Literal, want)
		}
		if toks[0].Text != text {
			t.Errorf("%q: got lexeme %q", text, toks[0].Text)
		}
	}
}

func TestTrailingDotIsNotPartOfNumber(t *testing.T) {
	toks, _ := scanAll(t, "12.")
	got := types(toks)
	if len(got) != 2 || got[0] != token.Number || got[1] != token.Dot {
		t.Fatalf("got %v", got)
	}
	if toks[0].Literal != value.Number(12) {
		t.Errorf("got %v", toks[0].Literal)
	}

	toks, _ = scanAll(t, "1.x")
	got = types(toks)
	if len(got) != 3 || got[1] != token.Dot || got[2] != token.Identifier {
		t.Fatalf("got %v", got)
	}
}

func TestKeywords(t *testing.T) {
	for word, typ := range token.Keywords {
		toks, _ := scanAll(t, word)
		if len(toks) != 1 || toks[0].Type != typ {
			t.Errorf("%q: got %v", word, toks)
		}
	}
	toks, _ := scanAll(t, "classy")
	if toks[0].Type != token.Identifier {
		t.Errorf("got %s, want identifier", toks[0].Type)
	}
}

func TestOperators(t *testing.T) {
	for _, tt := range []struct {
		src  string
		want []token.Type
	}{
		{"!=!===<=<>=>/-", []token.Type{
			token.BangEqual, token.BangEqual, token.EqualEqual, token.LessEqual,
			token.Less, token.GreaterEqual, token.Greater, token.Slash, token.Minus,
		}},
		{"!= ! == = <= < >= > / -", []token.Type{
			token.BangEqual, token.Bang, token.EqualEqual, token.Equal, token.LessEqual,
			token.Less, token.GreaterEqual, token.Greater, token.Slash, token.Minus,
		}},
	} {
		toks, errs := scanAll(t, tt.src)
		if len(errs) != 0 {
			t.Fatal(errs)
		}
		got := types(toks)
		if len(got) != len(tt.want) {
			t.Fatalf("%q: got %v, want %v", tt.src, got, tt.want)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%q: token %d: got %s, want %s", tt.src, i, got[i], tt.want[i])
			}
		}
	}
}

func TestStringEscapes(t *testing.T) {
	toks, errs := scanAll(t, `"a\nb\tc\rd\\e\"f"`)
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if want := value.String("a\nb\tc\rd\\e\"f"); toks[0].Literal != want {
		t.Errorf("got %v, want %v", toks[0].Literal, want)
	}
}

func TestInvalidEscapeIsAWarning(t *testing.T) {
	var list diag.List
	toks, errs := scanAll(t, `"a\qb" 1`, WithDiagnostics(&list))
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if len(toks) != 2 {
		t.Fatalf("got %v", toks)
	}
	if want := value.String(`a\qb`); toks[0].Literal != want {
		t.Errorf("got %v, want %v", toks[0].Literal, want)
	}
	if list.Len() != 1 {
		t.Fatalf("got %d diagnostics", list.Len())
	}
	d := list.Diagnostics[0]
	if d.Severity != diag.SeverityWarning || !errors.Is(d.Err, InvalidEscape) {
		t.Errorf("got %v", d)
	}
	if got := d.Err.(*Error).At.String(); got != "1:2" {
		t.Errorf("got warning at %s, want 1:2", got)
	}
	if list.HasErrors() {
		t.Error("warnings must not count as errors")
	}
}

func TestUnterminatedString(t *testing.T) {
	_, errs := scanAll(t, `"abc`)
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	var lexErr *Error
	if !errors.As(errs[0], &lexErr) || lexErr.Kind != UnterminatedString {
		t.Fatalf("got %v", errs[0])
	}
	if lexErr.Partial != "abc" {
		t.Errorf("got partial %q", lexErr.Partial)
	}
	if got, want := lexErr.Error(), `unterminated string at 1:0-3: expected closing '"' after "abc"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnmatchedCharacterRecovers(t *testing.T) {
	toks, errs := scanAll(t, "1 @ 2 # 3")
	if len(errs) != 2 {
		t.Fatalf("got %v", errs)
	}
	for _, err := range errs {
		if !errors.Is(err, UnmatchedCharacter) {
			t.Errorf("got %v", err)
		}
	}
	if got := errs[0].(*Error).At.String(); got != "1:2" {
		t.Errorf("got %s, want 1:2", got)
	}
	if len(toks) != 3 {
		t.Errorf("got %v", toks)
	}
}

func TestSpans(t *testing.T) {
	toks, _ := scanAll(t, "12 + abc\n  \"x\ny\" >=")
	want := []string{"1:0-1", "1:3", "1:5-7", "2-3:0-1", "3:3-4"}
	if len(toks) != len(want) {
		t.Fatalf("got %v", toks)
	}
	for i, tok := range toks {
		if got := tok.Span.String(); got != want[i] {
			t.Errorf("%s: got span %s, want %s", tok.Type, got, want[i])
		}
	}
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	s := New(&errReader{data: "1 +", err: boom})
	for {
		_, err := s.Scan()
		if err == nil {
			continue
		}
		if !errors.Is(err, boom) {
			t.Fatalf("got %v, want %v", err, boom)
		}
		return
	}
}

type errReader struct {
	data string
	err  error
}

func (r *errReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}
