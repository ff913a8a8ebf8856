// Package diag renders caret diagnostics: the offending source line with a
// ^^^ underline marking a span.
package diag

import (
	"fmt"
	"io"
	"strings"

	"arith/internal/span"
)

// Render writes a two-line diagnostic for s against source: the line
// containing the start of the span, then a caret underline. The underline is
// clamped to the rendered line and always at least one caret wide, so a
// synthetic span one past the end of the input still gets a caret.
func Render(w io.Writer, source string, s span.Span) {
	start := min(s.Start, len(source))
	lineStart := strings.LastIndexByte(source[:start], '\n') + 1
	lineEnd := len(source)
	if i := strings.IndexByte(source[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}

	fmt.Fprintln(w, source[lineStart:lineEnd])

	col := start - lineStart
	width := min(s.End, lineEnd) - start
	if width < 1 {
		width = 1
	}
	fmt.Fprintln(w, strings.Repeat(" ", col)+strings.Repeat("^", width))
}
