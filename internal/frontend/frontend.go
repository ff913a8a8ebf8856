// Package frontend composes the lexer and parser into a single entry point
// and tags which stage a failure came from.
package frontend

import (
	"io"

	"arith/internal/ast"
	"arith/internal/diag"
	"arith/internal/lexer"
	"arith/internal/parser"
	"arith/internal/span"
)

// Error is a front-end failure. Exactly one of Lex and Parse is non-nil.
type Error struct {
	Lex   *lexer.Error
	Parse *parser.Error
}

func (e *Error) Error() string {
	if e.Lex != nil {
		return e.Lex.Error()
	}
	return e.Parse.Error()
}

// Unwrap returns the stage error so callers can match with errors.As.
func (e *Error) Unwrap() error {
	if e.Lex != nil {
		return e.Lex
	}
	return e.Parse
}

// DiagnosticSpan returns the source range to highlight when reporting e
// against a source of sourceLen bytes. Lexical errors highlight their own
// span; syntax errors derive theirs from the offending token.
func (e *Error) DiagnosticSpan(sourceLen int) span.Span {
	if e.Lex != nil {
		return e.Lex.Span
	}
	return e.Parse.DiagnosticSpan(sourceLen)
}

// ShowDiagnostic writes the two-line caret diagnostic for e to w, rendered
// against the source the error came from. The error message itself is not
// part of the two lines; callers print it separately.
func (e *Error) ShowDiagnostic(w io.Writer, source string) {
	diag.Render(w, source, e.DiagnosticSpan(len(source)))
}

// ParseSource runs the whole front end on source: lexing, then parsing the
// resulting tokens as a single expression.
func ParseSource(source string) (ast.Expr, *Error) {
	tokens, lexErr := lexer.New(source).Tokenize()
	if lexErr != nil {
		return ast.Expr{}, &Error{Lex: lexErr}
	}
	expr, parseErr := parser.New(tokens).Parse()
	if parseErr != nil {
		return ast.Expr{}, &Error{Parse: parseErr}
	}
	return expr, nil
}
