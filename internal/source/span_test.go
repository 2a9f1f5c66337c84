package source

import (
	"testing"
)

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span",
			a:        Span{File: 1, Start: 10, End: 40},
			b:        Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "different file ignored",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Fatalf("Cover = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{File: 0, Start: 5, End: 10}
	if !s.Contains(5) || !s.Contains(9) {
		t.Fatal("expected boundary offsets inside")
	}
	if s.Contains(10) || s.Contains(4) {
		t.Fatal("expected offsets outside half-open range")
	}
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Fatal("expected empty span")
	}
}
