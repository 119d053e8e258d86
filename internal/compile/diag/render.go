package diag

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/rileyq/lox/internal/compile/token"
)

// Located is implemented by errors that know which stage produced them and
// which part of the source they describe.
type Located interface {
	error
	Span() token.Span
	Stage() string
}

// Render formats err for display. Errors implementing Located get a snippet of
// src with the offending range underlined; joined errors are rendered one
// after another. name labels the source and may be empty.
func Render(src, name string, err error) string {
	if err == nil {
		return ""
	}
	loc, ok := err.(Located)
	if !ok {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			var parts []string
			for _, e := range joined.Unwrap() {
				parts = append(parts, Render(src, name, e))
			}
			return strings.Join(parts, "\n")
		}
		if !errors.As(err, &loc) {
			return err.Error() + "\n"
		}
	}
	header := loc.Stage()
	if name != "" {
		header += " in " + name
	}
	span := loc.Span()
	if span == (token.Span{}) {
		return fmt.Sprintf("%s: %v\n", header, err)
	}
	return snippet(src, header, span, err)
}

// RenderDiagnostic is Render with the severity prefixed for warnings.
func RenderDiagnostic(src, name string, d Diagnostic) string {
	out := Render(src, name, d.Err)
	if d.Severity == SeverityWarning {
		out = "warning: " + out
	}
	return out
}

// snippet shows the line holding the start of span, with one line of context
// on either side and carets under the spanned columns.
func snippet(src, header string, span token.Span, err error) string {
	lines := strings.Split(src, "\n")
	line := span.StartLine
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := []rune(lines[line-1])

	col := min(max(span.StartCol, 0), len(lineTxt))
	width := 1
	if span.EndLine == span.StartLine && span.EndCol > span.StartCol+1 {
		width = span.EndCol - span.StartCol
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v\n\n", header, err)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, string(lineTxt))
	fmt.Fprintf(&b, "     | %s%s\n", strings.Repeat(" ", col), strings.Repeat("^", width))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
