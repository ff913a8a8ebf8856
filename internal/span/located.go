package span

// Located pairs a value with the span of source it was derived from. The
// same container carries token payloads, error payloads, operator kinds and
// AST nodes; two Located values compare equal when both fields do.
type Located[T any] struct {
	Value T    `json:"value"`
	Span  Span `json:"span"`
}

// Locate wraps value with its source span.
func Locate[T any](value T, s Span) Located[T] {
	return Located[T]{Value: value, Span: s}
}
