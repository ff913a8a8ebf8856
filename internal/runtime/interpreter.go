// Package runtime implements the tree-walking interpreter for arithmetic
// expressions.
package runtime

import (
	"fmt"

	"arith/internal/ast"
	"arith/internal/span"
)

// ============================================================
// Runtime error
// ============================================================

// ErrorKind classifies an evaluation failure.
type ErrorKind int

const (
	DivisionByZero ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is an evaluation failure located at the node that caused it. A
// DivisionByZero carries the span of the whole division node, operands
// included.
type Error span.Located[ErrorKind]

func (e *Error) Error() string {
	return fmt.Sprintf("runtime error at %s: %s", e.Span, e.Value)
}

func runtimeErr(kind ErrorKind, s span.Span) *Error {
	return &Error{Value: kind, Span: s}
}

// ============================================================
// Interpreter
// ============================================================

// Interpreter evaluates expressions to int64 values. It keeps no state
// between calls.
type Interpreter struct{}

// NewInterpreter creates a new Interpreter.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Eval evaluates expr. Number literals are reinterpreted as signed
// two's-complement values, division truncates toward zero, and the remaining
// arithmetic uses native wrapping int64 semantics. Division by zero is the
// only failure; any division-free expression evaluates successfully.
func (i *Interpreter) Eval(expr ast.Expr) (int64, *Error) {
	switch k := expr.Value.(type) {
	case ast.Num:
		return int64(k.Value), nil

	case ast.Unary:
		v, err := i.Eval(k.Operand)
		if err != nil {
			return 0, err
		}
		if k.Op.Value == ast.UnaryMinus {
			v = -v
		}
		return v, nil

	case ast.Binary:
		left, err := i.Eval(k.Left)
		if err != nil {
			return 0, err
		}
		right, err := i.Eval(k.Right)
		if err != nil {
			return 0, err
		}
		switch k.Op.Value {
		case ast.Add:
			return left + right, nil
		case ast.Sub:
			return left - right, nil
		case ast.Mul:
			return left * right, nil
		case ast.Div:
			if right == 0 {
				return 0, runtimeErr(DivisionByZero, expr.Span)
			}
			return left / right, nil
		}
	}
	panic(fmt.Sprintf("runtime: unhandled ast kind %T", expr.Value))
}
