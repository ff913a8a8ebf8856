package runtime

import (
	"math"
	"testing"

	"arith/internal/lexer"
	"arith/internal/parser"
	"arith/internal/span"
)

// evalSource runs source through the full pipeline and evaluates it. Lexical
// and syntax errors fail the test; only runtime errors are returned.
func evalSource(t *testing.T, source string) (int64, *Error) {
	t.Helper()
	tokens, lexErr := lexer.New(source).Tokenize()
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	expr, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	return NewInterpreter().Eval(expr)
}

func expectValue(t *testing.T, source string, want int64) {
	t.Helper()
	got, err := evalSource(t, source)
	if err != nil {
		t.Fatalf("%s: runtime error: %v", source, err)
	}
	if got != want {
		t.Errorf("%s: expected %d, got %d", source, want, got)
	}
}

func expectRuntimeError(t *testing.T, source string, kind ErrorKind, s span.Span) {
	t.Helper()
	_, err := evalSource(t, source)
	if err == nil {
		t.Fatalf("%s: expected runtime error, got none", source)
	}
	if err.Value != kind {
		t.Errorf("%s: expected %s, got %s", source, kind, err.Value)
	}
	if err.Span != s {
		t.Errorf("%s: expected error span %s, got %s", source, s, err.Span)
	}
}

// ---- Tests ----

func TestEvalLiteral(t *testing.T) {
	expectValue(t, "42", 42)
	expectValue(t, "0", 0)
}

func TestEvalArithmetic(t *testing.T) {
	expectValue(t, "1 + 2 * 3", 7)
	expectValue(t, "(1 + 2) * 3", 9)
	expectValue(t, "10 - 4 + 2", 8)
	expectValue(t, "2 * 3 + 4 * 5", 26)
	expectValue(t, "1 + 2 * 3 - - 10", 17)
}

func TestEvalDivision(t *testing.T) {
	expectValue(t, "7 / 2", 3)
	expectValue(t, "100 / 10 / 2", 5)
	expectValue(t, "0 / 5", 0)
	// Division truncates toward zero.
	expectValue(t, "- 7 / 2", -3)
	expectValue(t, "7 / - 2", -3)
}

func TestEvalUnary(t *testing.T) {
	expectValue(t, "-5", -5)
	expectValue(t, "+5", 5)
	expectValue(t, "- 10", -10)
	expectValue(t, "- 1 * - 1", 1)
}

func TestEvalParens(t *testing.T) {
	expectValue(t, "(((5)))", 5)
	expectValue(t, "2 * (3 + 4) / 7", 2)
}

func TestEvalLargeLiteral(t *testing.T) {
	// Literals are scanned as uint64 and reinterpreted as two's-complement.
	expectValue(t, "9223372036854775807", math.MaxInt64)
	expectValue(t, "9223372036854775808", math.MinInt64)
	expectValue(t, "18446744073709551615", -1)
}

func TestEvalWrapping(t *testing.T) {
	expectValue(t, "9223372036854775807 + 1", math.MinInt64)
	expectValue(t, "4611686018427387904 * 2", math.MinInt64)
	expectValue(t, "- 9223372036854775808", math.MinInt64)
}

func TestDivisionByZero(t *testing.T) {
	// The error span covers the entire division node.
	expectRuntimeError(t, "4 / 0", DivisionByZero, span.New(0, 5))
	expectRuntimeError(t, "1 + 4 / 0", DivisionByZero, span.New(4, 9))
	expectRuntimeError(t, "(1 + 2) / (3 - 3)", DivisionByZero, span.New(1, 16))
}

func TestDivisionByZeroMessage(t *testing.T) {
	_, err := evalSource(t, "4 / 0")
	if err == nil {
		t.Fatal("expected runtime error, got none")
	}
	want := "runtime error at 0..5: division by zero"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
