package span

import "testing"

func TestMerge(t *testing.T) {
	tests := []struct {
		a, b, want Span
	}{
		{New(0, 1), New(4, 9), New(0, 9)},
		{New(4, 9), New(0, 1), New(0, 9)},
		{New(2, 5), New(3, 4), New(2, 5)},
		{New(3, 4), New(2, 5), New(2, 5)},
		{New(1, 4), New(2, 6), New(1, 6)},
		{New(7, 7), New(7, 7), New(7, 7)},
	}
	for i, tt := range tests {
		got := tt.a.Merge(tt.b)
		if got != tt.want {
			t.Errorf("case %d: %s.Merge(%s) = %s, want %s", i, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMergeCoversInputs(t *testing.T) {
	spans := []Span{New(0, 1), New(2, 3), New(4, 9), New(12, 16), New(0, 16)}
	for _, a := range spans {
		for _, b := range spans {
			got := a.Merge(b)
			if got.Start > a.Start || got.Start > b.Start {
				t.Errorf("%s.Merge(%s) = %s: start does not cover inputs", a, b, got)
			}
			if got.End < a.End || got.End < b.End {
				t.Errorf("%s.Merge(%s) = %s: end does not cover inputs", a, b, got)
			}
		}
	}
}

func TestLen(t *testing.T) {
	if got := New(14, 16).Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := New(3, 3).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestString(t *testing.T) {
	if got := New(4, 5).String(); got != "4..5" {
		t.Errorf("String() = %q, want %q", got, "4..5")
	}
}

func TestLocatedEquality(t *testing.T) {
	a := Locate("x", New(0, 1))
	b := Locate("x", New(0, 1))
	c := Locate("x", New(0, 2))
	if a != b {
		t.Errorf("identical located values compare unequal")
	}
	if a == c {
		t.Errorf("located values with different spans compare equal")
	}
}
