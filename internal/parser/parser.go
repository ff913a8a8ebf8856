// Package parser implements syntax analysis for arithmetic expressions.
// It is a recursive-descent parser over the grammar
//
//	Expr  := Term  (('+' | '-') Term)*
//	Term  := Unary (('*' | '/') Unary)*
//	Unary := ('+' | '-')? Atom
//	Atom  := NUMBER | '(' Expr ')'
//
// and fails fast: the first syntax error aborts the parse.
package parser

import (
	"fmt"

	"arith/internal/ast"
	"arith/internal/span"
	"arith/internal/token"
)

// ============================================================
// Errors
// ============================================================

// ErrorKind classifies a syntax failure.
type ErrorKind int

const (
	UnexpectedToken     ErrorKind = iota // reserved; kept for consumers that switch on kinds
	NotExpression                        // token that cannot start an expression
	NotOperator                          // token that is not an infix operator; swallowed by the binop fold
	UnclosedOpenParen                    // input ended while a '(' was still open
	RedundantExpression                  // leftover input after a complete expression
	Eof                                  // tokens ran out where more input was required
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case NotExpression:
		return "NotExpression"
	case NotOperator:
		return "NotOperator"
	case UnclosedOpenParen:
		return "UnclosedOpenParen"
	case RedundantExpression:
		return "RedundantExpression"
	case Eof:
		return "Eof"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a syntax error. Tok is the offending token; for UnclosedOpenParen
// it is the opening paren itself, and for Eof it is the zero value.
type Error struct {
	Kind ErrorKind   `json:"kind"`
	Tok  token.Token `json:"token"`
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token '%s' at %s", e.Tok.Value.Text(), e.Tok.Span)
	case NotExpression:
		return fmt.Sprintf("'%s' at %s is not the start of an expression", e.Tok.Value.Text(), e.Tok.Span)
	case NotOperator:
		return fmt.Sprintf("'%s' at %s is not an operator", e.Tok.Value.Text(), e.Tok.Span)
	case UnclosedOpenParen:
		return fmt.Sprintf("'(' at %s is never closed", e.Tok.Span)
	case RedundantExpression:
		return fmt.Sprintf("redundant expression starting at '%s' (%s)", e.Tok.Value.Text(), e.Tok.Span)
	case Eof:
		return "unexpected end of input"
	}
	return "syntax error"
}

// DiagnosticSpan returns the source range to highlight when reporting e
// against a source of sourceLen bytes. Errors that carry a token highlight
// it; RedundantExpression highlights everything from the leftover token to
// the end of the source; Eof highlights a synthetic one-byte span just past
// the end.
func (e *Error) DiagnosticSpan(sourceLen int) span.Span {
	switch e.Kind {
	case RedundantExpression:
		return span.New(e.Tok.Span.Start, sourceLen)
	case Eof:
		return span.New(sourceLen, sourceLen+1)
	default:
		return e.Tok.Span
	}
}

func errToken(kind ErrorKind, tok token.Token) *Error {
	return &Error{Kind: kind, Tok: tok}
}

func errEof() *Error {
	return &Error{Kind: Eof}
}

// ============================================================
// Parser
// ============================================================

// Parser performs syntax analysis on a stream of tokens.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a new parser from a token slice.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

// Parse parses the whole token stream as one expression. Leftover tokens
// after a complete expression are an error.
func (p *Parser) Parse() (ast.Expr, *Error) {
	expr, err := p.parseExpr()
	if err != nil {
		return ast.Expr{}, err
	}
	if tok, ok := p.peek(); ok {
		return ast.Expr{}, errToken(RedundantExpression, tok)
	}
	return expr, nil
}

// ---- navigation helpers ----

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() (token.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// ---- grammar productions ----

// parseExpr parses the additive level: Term (('+' | '-') Term)*.
func (p *Parser) parseExpr() (ast.Expr, *Error) {
	return p.parseLeftBinop(p.parseTerm, p.parseAdditiveOp)
}

// parseTerm parses the multiplicative level: Unary (('*' | '/') Unary)*.
func (p *Parser) parseTerm() (ast.Expr, *Error) {
	return p.parseLeftBinop(p.parseUnary, p.parseMultiplicativeOp)
}

// parseLeftBinop folds a left-associative run of binary applications. sub
// parses one operand; op consumes one operator of this precedence level, or
// returns an error without consuming anything, which ends the fold.
func (p *Parser) parseLeftBinop(sub func() (ast.Expr, *Error), op func() (ast.BinaryOp, *Error)) (ast.Expr, *Error) {
	expr, err := sub()
	if err != nil {
		return ast.Expr{}, err
	}
	for {
		if _, ok := p.peek(); !ok {
			break
		}
		binOp, opErr := op()
		if opErr != nil {
			break
		}
		right, err := sub()
		if err != nil {
			return ast.Expr{}, err
		}
		expr = ast.NewBinary(binOp, expr, right, expr.Span.Merge(right.Span))
	}
	return expr, nil
}

// parseAdditiveOp consumes a '+' or '-'.
func (p *Parser) parseAdditiveOp() (ast.BinaryOp, *Error) {
	tok, ok := p.peek()
	if !ok {
		return ast.BinaryOp{}, errEof()
	}
	switch tok.Value.Kind {
	case token.PLUS:
		p.advance()
		return ast.NewBinaryOp(ast.Add, tok.Span), nil
	case token.MINUS:
		p.advance()
		return ast.NewBinaryOp(ast.Sub, tok.Span), nil
	default:
		return ast.BinaryOp{}, errToken(NotOperator, tok)
	}
}

// parseMultiplicativeOp consumes a '*' or '/'.
func (p *Parser) parseMultiplicativeOp() (ast.BinaryOp, *Error) {
	tok, ok := p.peek()
	if !ok {
		return ast.BinaryOp{}, errEof()
	}
	switch tok.Value.Kind {
	case token.ASTERISK:
		p.advance()
		return ast.NewBinaryOp(ast.Mul, tok.Span), nil
	case token.SLASH:
		p.advance()
		return ast.NewBinaryOp(ast.Div, tok.Span), nil
	default:
		return ast.BinaryOp{}, errToken(NotOperator, tok)
	}
}

// parseUnary parses at most one prefix sign applied to an Atom. The sign
// binds to the Atom alone, so "--10" is a syntax error rather than a double
// negation.
func (p *Parser) parseUnary() (ast.Expr, *Error) {
	tok, ok := p.peek()
	if !ok || (tok.Value.Kind != token.PLUS && tok.Value.Kind != token.MINUS) {
		return p.parseAtom()
	}
	p.advance()

	kind := ast.UnaryPlus
	if tok.Value.Kind == token.MINUS {
		kind = ast.UnaryMinus
	}
	op := ast.NewUnaryOp(kind, tok.Span)

	operand, err := p.parseAtom()
	if err != nil {
		return ast.Expr{}, err
	}
	return ast.NewUnary(op, operand, op.Span.Merge(operand.Span)), nil
}

// parseAtom parses a number or a parenthesized expression. A parenthesized
// atom keeps the inner expression's span; the parens are not included.
func (p *Parser) parseAtom() (ast.Expr, *Error) {
	tok, ok := p.advance()
	if !ok {
		return ast.Expr{}, errEof()
	}
	switch tok.Value.Kind {
	case token.NUMBER:
		return ast.NewNum(tok.Value.Num, tok.Span), nil
	case token.LPAREN:
		inner, err := p.parseExpr()
		if err != nil {
			return ast.Expr{}, err
		}
		closing, ok := p.advance()
		if !ok {
			return ast.Expr{}, errToken(UnclosedOpenParen, tok)
		}
		if closing.Value.Kind != token.RPAREN {
			return ast.Expr{}, errToken(RedundantExpression, closing)
		}
		return inner, nil
	default:
		return ast.Expr{}, errToken(NotExpression, tok)
	}
}
