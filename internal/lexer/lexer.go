// Package lexer implements lexical analysis for arithmetic expressions.
// Scanning is fail-fast: the first invalid byte aborts with a located error.
package lexer

import (
	"fmt"
	"strconv"

	"arith/internal/span"
	"arith/internal/token"
)

// ErrorKind classifies a lexical failure.
type ErrorKind int

const (
	InvalidChar    ErrorKind = iota // byte that cannot start any token
	NumberOverflow                  // digit run that does not fit in uint64
	Eof                             // reserved; scanning stops cleanly at end of input
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidChar:
		return "InvalidChar"
	case NumberOverflow:
		return "NumberOverflow"
	case Eof:
		return "Eof"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ErrorData is the payload of a lexical error.
type ErrorData struct {
	Kind ErrorKind `json:"kind"`
	Ch   byte      `json:"ch,omitempty"` // offending byte for InvalidChar
}

// Error is a lexical error located in the source.
type Error span.Located[ErrorData]

func (e *Error) Error() string {
	switch e.Value.Kind {
	case InvalidChar:
		return fmt.Sprintf("invalid character %q at %s", e.Value.Ch, e.Span)
	case NumberOverflow:
		return fmt.Sprintf("number literal at %s is out of range", e.Span)
	case Eof:
		return fmt.Sprintf("unexpected end of input at %s", e.Span)
	}
	return fmt.Sprintf("lexical error at %s", e.Span)
}

func invalidChar(ch byte, s span.Span) *Error {
	return &Error{Value: ErrorData{Kind: InvalidChar, Ch: ch}, Span: s}
}

func numberOverflow(s span.Span) *Error {
	return &Error{Value: ErrorData{Kind: NumberOverflow}, Span: s}
}

// Lexer tokenizes expression source into a sequence of tokens.
type Lexer struct {
	source string
	pos    int // current read position in source
}

// New creates a new Lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{source: source}
}

// Tokenize scans the entire source and returns its tokens. End of input is
// not an error: empty or all-whitespace source yields an empty slice.
func (l *Lexer) Tokenize() ([]token.Token, *Error) {
	var tokens []token.Token
	for l.pos < len(l.source) {
		ch := l.peek()
		switch {
		case isDigit(ch):
			tok, err := l.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isSpace(ch):
			l.skipWhitespace()
		default:
			tok, err := l.readOperator()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// ---- internal helpers ----

// peek returns the current byte without advancing, or 0 if at end.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

// advance consumes the current byte and returns it.
func (l *Lexer) advance() byte {
	ch := l.source[l.pos]
	l.pos++
	return ch
}

// makeSpan returns a span from start to the current position.
func (l *Lexer) makeSpan(start int) span.Span {
	return span.New(start, l.pos)
}

// skipWhitespace skips a maximal run of spaces, tabs and newlines.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.source) && isSpace(l.source[l.pos]) {
		l.pos++
	}
}

// ---- token reading ----

// readNumber reads a maximal run of decimal digits as one NUMBER token.
func (l *Lexer) readNumber() (token.Token, *Error) {
	start := l.pos
	for l.pos < len(l.source) && isDigit(l.source[l.pos]) {
		l.pos++
	}
	s := l.makeSpan(start)
	n, err := strconv.ParseUint(l.source[start:l.pos], 10, 64)
	if err != nil {
		// The run is digits only, so the only possible failure is range.
		return token.Token{}, numberOverflow(s)
	}
	return token.Number(n, s), nil
}

// readOperator reads a single-byte operator or paren token.
func (l *Lexer) readOperator() (token.Token, *Error) {
	start := l.pos
	ch := l.advance()
	s := l.makeSpan(start)

	switch ch {
	case '+':
		return token.Plus(s), nil
	case '-':
		return token.Minus(s), nil
	case '*':
		return token.Asterisk(s), nil
	case '/':
		return token.Slash(s), nil
	case '(':
		return token.LParen(s), nil
	case ')':
		return token.RParen(s), nil
	default:
		return token.Token{}, invalidChar(ch, s)
	}
}

// ---- character classification ----

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}
