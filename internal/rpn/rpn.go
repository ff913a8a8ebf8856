// Package rpn compiles expression trees to reverse Polish notation.
package rpn

import (
	"fmt"
	"strconv"
	"strings"

	"arith/internal/ast"
)

// Emitter compiles expressions to postfix strings. It keeps no state between
// calls; compiling the same tree twice yields identical output.
type Emitter struct{}

// New creates a new Emitter.
func New() *Emitter {
	return &Emitter{}
}

// Compile renders expr in postfix form: operands space-separated before
// their binary operator, and a prefix sign glued directly onto its compiled
// operand ("- 10" compiles to "-10"). Compilation cannot fail.
func (e *Emitter) Compile(expr ast.Expr) string {
	var buf strings.Builder
	e.compileExpr(expr, &buf)
	return buf.String()
}

func (e *Emitter) compileExpr(expr ast.Expr, buf *strings.Builder) {
	switch k := expr.Value.(type) {
	case ast.Num:
		buf.WriteString(strconv.FormatUint(k.Value, 10))

	case ast.Unary:
		buf.WriteString(k.Op.Value.String())
		e.compileExpr(k.Operand, buf)

	case ast.Binary:
		e.compileExpr(k.Left, buf)
		buf.WriteByte(' ')
		e.compileExpr(k.Right, buf)
		buf.WriteByte(' ')
		buf.WriteString(k.Op.Value.String())

	default:
		panic(fmt.Sprintf("rpn: unhandled ast kind %T", expr.Value))
	}
}
