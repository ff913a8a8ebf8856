// Package ast defines the located abstract syntax tree for arithmetic
// expressions. Sub-trees are held by value, so an Expr exclusively owns its
// children and whole expressions compare structurally with ==.
package ast

import (
	"fmt"

	"arith/internal/span"
)

// ============================================================
// Operator kinds
// ============================================================

// UnaryOpKind identifies a prefix operator.
type UnaryOpKind int

const (
	UnaryPlus UnaryOpKind = iota
	UnaryMinus
)

func (k UnaryOpKind) String() string {
	switch k {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	}
	return fmt.Sprintf("UnaryOpKind(%d)", int(k))
}

// BinaryOpKind identifies an infix operator.
type BinaryOpKind int

const (
	Add BinaryOpKind = iota
	Sub
	Mul
	Div
)

func (k BinaryOpKind) String() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return fmt.Sprintf("BinaryOpKind(%d)", int(k))
}

// UnaryOp is a prefix operator located at its source token.
type UnaryOp = span.Located[UnaryOpKind]

// BinaryOp is an infix operator located at its source token.
type BinaryOp = span.Located[BinaryOpKind]

// NewUnaryOp returns a located prefix operator.
func NewUnaryOp(k UnaryOpKind, s span.Span) UnaryOp {
	return span.Locate(k, s)
}

// NewBinaryOp returns a located infix operator.
func NewBinaryOp(k BinaryOpKind, s span.Span) BinaryOp {
	return span.Locate(k, s)
}

// ============================================================
// Node kinds
// ============================================================

// Kind is the payload of an AST node. The set of implementations is closed:
// Num, Unary and Binary.
type Kind interface {
	astKind()
}

// Num is an unsigned integer literal.
type Num struct {
	Value uint64
}

// Unary applies a prefix operator to a single operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary applies an infix operator to two operands.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (Num) astKind()    {}
func (Unary) astKind()  {}
func (Binary) astKind() {}

// Expr is an AST node located in the source. The span of a composite node
// covers all of its children and its operator token; a parenthesized
// expression keeps the span of the expression inside the parens.
type Expr = span.Located[Kind]

// ============================================================
// Constructors
// ============================================================

// NewNum returns a literal node for the number token spanning s.
func NewNum(n uint64, s span.Span) Expr {
	return Expr{Value: Num{Value: n}, Span: s}
}

// NewUnary returns a prefix application spanning s.
func NewUnary(op UnaryOp, operand Expr, s span.Span) Expr {
	return Expr{Value: Unary{Op: op, Operand: operand}, Span: s}
}

// NewBinary returns an infix application spanning s.
func NewBinary(op BinaryOp, left, right Expr, s span.Span) Expr {
	return Expr{Value: Binary{Op: op, Left: left, Right: right}, Span: s}
}
