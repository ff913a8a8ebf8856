package diag

import (
	"bytes"
	"testing"

	"arith/internal/span"
)

func render(source string, s span.Span) string {
	var buf bytes.Buffer
	Render(&buf, source, s)
	return buf.String()
}

func TestRenderSingleToken(t *testing.T) {
	got := render("1 + 2 - * 3", span.New(8, 9))
	want := "1 + 2 - * 3\n        ^\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderWideSpan(t *testing.T) {
	got := render("(+ 1 3)", span.New(5, 7))
	want := "(+ 1 3)\n     ^^\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderPastEnd(t *testing.T) {
	// A synthetic span one past the end still gets a single caret.
	got := render("1 +", span.New(3, 4))
	want := "1 +\n   ^\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderEmptySource(t *testing.T) {
	got := render("", span.New(0, 1))
	want := "\n^\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderSecondLine(t *testing.T) {
	// Only the line containing the start of the span is shown.
	got := render("1 + 2\n3 * @", span.New(10, 11))
	want := "3 * @\n    ^\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderSpanClampedToLine(t *testing.T) {
	// A span reaching past the line end is clamped to the line.
	got := render("10 5\n6", span.New(3, 6))
	want := "10 5\n   ^\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderTrailingNewline(t *testing.T) {
	got := render("4 / 0\n", span.New(0, 5))
	want := "4 / 0\n^^^^^\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
