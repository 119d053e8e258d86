package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"codeberg.org/rileyq/lox/internal/compile/diag"
	"codeberg.org/rileyq/lox/internal/compile/token"
	"codeberg.org/rileyq/lox/internal/compile/value"
)

// Scanner turns source text into tokens, one per call to Scan.
type Scanner struct {
	rd   *runeScanner
	span token.Span
	diag diag.Handler
}

type Option func(*Scanner)

// WithDiagnostics routes warnings such as invalid escapes to h.
func WithDiagnostics(h diag.Handler) Option {
	return func(s *Scanner) {
		if h != nil {
			s.diag = h
		}
	}
}

func New(rd io.Reader, opts ...Option) *Scanner {
	s := &Scanner{
		rd:   newRuneScanner(bufio.NewReader(rd)),
		span: token.NewSpan(),
		diag: diag.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewString(src string, opts ...Option) *Scanner {
	return New(strings.NewReader(src), opts...)
}

// Scan returns the next token. A lexical problem in one token is returned as
// a *Error and scanning carries on with the following call. Scan returns
// io.EOF once the source is exhausted.
func (s *Scanner) Scan() (*token.Token, error) {
	for {
		s.span.Reset()
		s.rd.Begin()

		r, ok := s.peek()
		if !ok {
			return nil, s.rd.Err()
		}

		tok, err := s.scanToken(r)
		if tok != nil || err != nil {
			return tok, err
		}
	}
}

// All scans the remaining source, collecting tokens and lexical errors. Read
// failures other than lexical errors stop the scan and are returned.
func (s *Scanner) All() ([]*token.Token, []error, error) {
	var toks []*token.Token
	var errs []error
	for {
		tok, err := s.Scan()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, errs, nil
			}
			var lexErr *Error
			if errors.As(err, &lexErr) {
				errs = append(errs, err)
				continue
			}
			return toks, errs, err
		}
		toks = append(toks, tok)
	}
}

// scanToken consumes one lexeme starting with r. It returns a nil token and
// nil error for whitespace and comments.
func (s *Scanner) scanToken(r rune) (*token.Token, error) {
	switch {
	case r == ' ' || r == '\t' || r == '\r':
		s.next()
		return nil, nil
	case r == '\n':
		s.next()
		s.span.Newline()
		return nil, nil
	case r == '"':
		return s.string()
	case isDigit(r):
		return s.number()
	case isIdentifierStart(r):
		return s.identifier(), nil
	case r == '/' && s.peekIs(1, '/'):
		s.lineComment()
		return nil, nil
	default:
		return s.operator()
	}
}

func (s *Scanner) operator() (*token.Token, error) {
	r, _ := s.next()

	if r2, ok := s.peek(); ok {
		if typ, ok := token.Fixed[string([]rune{r, r2})]; ok {
			s.next()
			return s.token(typ, nil), nil
		}
	}
	if typ, ok := token.Fixed[string(r)]; ok {
		return s.token(typ, nil), nil
	}

	s.rd.End()
	return nil, &Error{
		Kind: UnmatchedCharacter,
		Msg:  fmt.Sprintf("unexpected character %s", strconv.QuoteRune(r)),
		At:   s.span,
	}
}

func (s *Scanner) string() (*token.Token, error) {
	s.next() // opening quote

	var b strings.Builder
	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		s.next()
		switch r {
		case '"':
			return s.token(token.String, value.String(b.String())), nil
		case '\n':
			s.span.Newline()
			b.WriteRune(r)
		case '\\':
			b.WriteString(s.escape())
		default:
			b.WriteRune(r)
		}
	}

	if err := s.rd.Err(); !errors.Is(err, io.EOF) {
		return nil, err
	}
	s.rd.End()
	return nil, &Error{
		Kind:    UnterminatedString,
		Msg:     "expected closing '\"' after " + value.Quote(b.String()),
		At:      s.span,
		Partial: b.String(),
	}
}

// escape decodes the character after a backslash. Unknown escapes are
// reported as warnings and the backslash is kept, leaving the following
// character to be read as ordinary string content.
func (s *Scanner) escape() string {
	r, ok := s.peek()
	var decoded string
	switch r {
	case 'n':
		decoded = "\n"
	case 't':
		decoded = "\t"
	case 'r':
		decoded = "\r"
	case '\\':
		decoded = `\`
	case '"':
		decoded = `"`
	}
	if ok && decoded != "" {
		s.next()
		return decoded
	}

	at := token.Span{
		StartLine: s.span.EndLine,
		EndLine:   s.span.EndLine,
		StartCol:  s.span.EndCol - 1,
		EndCol:    s.span.EndCol,
	}
	msg := `expected one of \n, \t, \r, \\, \" but found end of input`
	if ok {
		msg = fmt.Sprintf(`expected one of \n, \t, \r, \\, \" but found %s`, strconv.QuoteRune(r))
	}
	s.diag.Handle(diag.Diagnostic{
		Severity: diag.SeverityWarning,
		Err:      &Error{Kind: InvalidEscape, Msg: msg, At: at},
	})
	return `\`
}

func (s *Scanner) number() (*token.Token, error) {
	s.digits()
	if s.peekIs(0, '.') {
		if r, ok := s.rd.Peek(1); ok && isDigit(r) {
			s.next()
			s.digits()
		}
	}

	text := s.rd.Text()
	n, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.rd.End()
		return nil, &Error{
			Kind: NumberParseFailure,
			Msg:  fmt.Sprintf("cannot parse %q as a number", text),
			At:   s.span,
		}
	}
	return s.token(token.Number, value.Number(n)), nil
}

func (s *Scanner) digits() {
	for {
		r, ok := s.peek()
		if !ok || !isDigit(r) {
			return
		}
		s.next()
	}
}

func (s *Scanner) identifier() *token.Token {
	for {
		r, ok := s.peek()
		if !ok || !isIdentifierContinue(r) {
			break
		}
		s.next()
	}
	return s.token(token.Lookup(s.rd.Text()), nil)
}

func (s *Scanner) lineComment() {
	for {
		r, ok := s.peek()
		if !ok || r == '\n' {
			return
		}
		s.next()
	}
}

func (s *Scanner) token(typ token.Type, lit value.Value) *token.Token {
	return &token.Token{
		Type:    typ,
		Text:    s.rd.End(),
		Literal: lit,
		Span:    s.span,
	}
}

func (s *Scanner) next() (rune, bool) {
	r, ok := s.rd.Next()
	if ok {
		s.span.Advance()
	}
	return r, ok
}

func (s *Scanner) peek() (rune, bool) {
	return s.rd.Peek(0)
}

func (s *Scanner) peekIs(n int, want rune) bool {
	r, ok := s.rd.Peek(n)
	return ok && r == want
}

func isIdentifierStart(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isIdentifierContinue(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// runeScanner reads runes with a small lookahead window and records the runes
// consumed since the last call to Begin.
type runeScanner struct {
	rd        io.RuneReader
	ahead     []rune
	err       error
	recording bool
	buf       []rune
}

func newRuneScanner(rd io.RuneReader) *runeScanner {
	return &runeScanner{rd: rd}
}

func (r *runeScanner) Begin() {
	r.recording = true
	r.buf = r.buf[:0]
}

// End stops recording and returns the text read since Begin.
func (r *runeScanner) End() string {
	r.recording = false
	return string(r.buf)
}

// Text returns the text read since Begin without stopping the recording.
func (r *runeScanner) Text() string {
	return string(r.buf)
}

// Peek returns the rune n positions ahead without consuming anything.
func (r *runeScanner) Peek(n int) (rune, bool) {
	for len(r.ahead) <= n && r.err == nil {
		ru, _, err := r.rd.ReadRune()
		if err != nil {
			r.err = err
			break
		}
		r.ahead = append(r.ahead, ru)
	}
	if n < len(r.ahead) {
		return r.ahead[n], true
	}
	return 0, false
}

// Next consumes and returns the next rune.
func (r *runeScanner) Next() (rune, bool) {
	ru, ok := r.Peek(0)
	if !ok {
		return 0, false
	}
	r.ahead = append(r.ahead[:0], r.ahead[1:]...)
	if r.recording {
		r.buf = append(r.buf, ru)
	}
	return ru, true
}

// Err is the error that ended reading, io.EOF once the input is exhausted.
// It is nil while input remains.
func (r *runeScanner) Err() error {
	if len(r.ahead) > 0 {
		return nil
	}
	return r.err
}
