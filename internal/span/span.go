// Package span provides the byte-range source locations used across the
// front end, plus a generic carrier pairing a value with its location.
package span

import "fmt"

// Span represents a half-open byte range [Start, End) in the source.
type Span struct {
	Start int `json:"start"` // byte offset of the first byte
	End   int `json:"end"`   // byte offset one past the last byte
}

// New returns the span [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	return Span{
		Start: min(s.Start, other.Start),
		End:   max(s.End, other.End),
	}
}
