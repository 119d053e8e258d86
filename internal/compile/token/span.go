package token

import "fmt"

// Span is a range of source text. Lines count from 1 and columns from 0; the
// end column is exclusive.
type Span struct {
	StartLine int
	EndLine   int
	StartCol  int
	EndCol    int
}

// NewSpan returns an empty span at the start of the first line.
func NewSpan() Span {
	return Span{StartLine: 1, EndLine: 1}
}

// Advance extends the span by one character.
func (s *Span) Advance() {
	s.EndCol++
}

// Newline moves the end of the span to the start of the next line.
func (s *Span) Newline() {
	s.EndLine++
	s.StartCol = 0
	s.EndCol = 0
}

// Reset collapses the span to its end, ready for the next lexeme.
func (s *Span) Reset() {
	s.StartLine = s.EndLine
	s.StartCol = s.EndCol
}

// Join returns the smallest span covering a and b.
func Join(a, b Span) Span {
	if a == (Span{}) {
		return b
	}
	if b == (Span{}) {
		return a
	}
	out := a
	if b.StartLine < out.StartLine || b.StartLine == out.StartLine && b.StartCol < out.StartCol {
		out.StartLine, out.StartCol = b.StartLine, b.StartCol
	}
	if b.EndLine > out.EndLine || b.EndLine == out.EndLine && b.EndCol > out.EndCol {
		out.EndLine, out.EndCol = b.EndLine, b.EndCol
	}
	return out
}

func (s Span) String() string {
	singleLine := s.StartLine == s.EndLine
	singleChar := s.EndCol <= s.StartCol+1
	last := max(s.EndCol-1, 0)
	switch {
	case singleLine && singleChar:
		return fmt.Sprintf("%d:%d", s.StartLine, s.StartCol)
	case singleLine:
		return fmt.Sprintf("%d:%d-%d", s.StartLine, s.StartCol, last)
	case singleChar:
		return fmt.Sprintf("%d-%d:%d", s.StartLine, s.EndLine, s.StartCol)
	default:
		return fmt.Sprintf("%d-%d:%d-%d", s.StartLine, s.EndLine, s.StartCol, last)
	}
}
