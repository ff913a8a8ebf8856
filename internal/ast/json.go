package ast

import (
	"fmt"

	"arith/internal/span"
)

// NodeToMap converts an AST node to a map suitable for JSON serialization.
// This produces a tagged-union structure: every node has a "kind" field.
func NodeToMap(e Expr) map[string]interface{} {
	switch k := e.Value.(type) {
	case Num:
		return m("Num", e.Span, "value", k.Value)
	case Unary:
		return m("UnaryOp", e.Span,
			"op", opToMap(k.Op),
			"operand", NodeToMap(k.Operand))
	case Binary:
		return m("BinaryOp", e.Span,
			"op", opToMap(k.Op),
			"left", NodeToMap(k.Left),
			"right", NodeToMap(k.Right))
	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// ---- helpers ----

// m builds a map with kind, span, and extra key-value pairs.
func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": s.Start,
		"end":   s.End,
	}
}

func opToMap[T fmt.Stringer](op span.Located[T]) map[string]interface{} {
	return map[string]interface{}{
		"symbol": op.Value.String(),
		"span":   spanToMap(op.Span),
	}
}
