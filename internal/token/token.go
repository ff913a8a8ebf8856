// Package token defines the token types produced by the lexer.
package token

import (
	"fmt"
	"strconv"

	"arith/internal/span"
)

// Kind represents the type of a token.
type Kind int

const (
	// Literals
	NUMBER Kind = iota // unsigned integer literals: 123

	// Operators
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /

	// Delimiters
	LPAREN // (
	RPAREN // )
)

var kindNames = map[Kind]string{
	NUMBER: "NUMBER",

	PLUS:     "+",
	MINUS:    "-",
	ASTERISK: "*",
	SLASH:    "/",

	LPAREN: "(",
	RPAREN: ")",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Data is the payload of a token: its kind, plus the decoded value for
// NUMBER tokens.
type Data struct {
	Kind Kind   `json:"kind"`
	Num  uint64 `json:"num,omitempty"`
}

// Text returns the source-level text of the payload.
func (d Data) Text() string {
	if d.Kind == NUMBER {
		return strconv.FormatUint(d.Num, 10)
	}
	return d.Kind.String()
}

// Token is a token payload located in the source.
type Token = span.Located[Data]

// Number returns a NUMBER token holding n.
func Number(n uint64, s span.Span) Token {
	return span.Locate(Data{Kind: NUMBER, Num: n}, s)
}

// Plus returns a '+' token.
func Plus(s span.Span) Token {
	return span.Locate(Data{Kind: PLUS}, s)
}

// Minus returns a '-' token.
func Minus(s span.Span) Token {
	return span.Locate(Data{Kind: MINUS}, s)
}

// Asterisk returns a '*' token.
func Asterisk(s span.Span) Token {
	return span.Locate(Data{Kind: ASTERISK}, s)
}

// Slash returns a '/' token.
func Slash(s span.Span) Token {
	return span.Locate(Data{Kind: SLASH}, s)
}

// LParen returns a '(' token.
func LParen(s span.Span) Token {
	return span.Locate(Data{Kind: LPAREN}, s)
}

// RParen returns a ')' token.
func RParen(s span.Span) Token {
	return span.Locate(Data{Kind: RPAREN}, s)
}
