package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := NewRect(100, 100, 32, 32)

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"top-left corner", V(100, 100), true},
		{"inside", V(116, 116), true},
		{"right edge", V(132, 110), true},
		{"bottom-right corner", V(132, 132), true},
		{"just past right", V(133, 110), false},
		{"just above", V(110, 99), false},
		{"left of", V(99, 132), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsInclusive(tc.p); got != tc.expected {
				t.Errorf("ContainsInclusive(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectCornerOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "bottom-right corner inside",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "corners touch",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: true,
		},
		{
			name:     "apart",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 0, 10, 10),
			expected: false,
		},
		{
			name:     "plus-shaped straddle",
			a:        NewRect(10, 0, 10, 30),
			b:        NewRect(0, 10, 30, 10),
			expected: false,
		},
		{
			name:     "a inside b",
			a:        NewRect(5, 5, 2, 2),
			b:        NewRect(0, 0, 10, 10),
			expected: true,
		},
		{
			name:     "b inside a",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 2, 2),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.CornerOverlaps(tc.b); got != tc.expected {
				t.Errorf("CornerOverlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(V(400, 300), 32, 48)
	if r != NewRect(384, 276, 32, 48) {
		t.Errorf("CenteredRect() = %+v", r)
	}

	// Odd sizes truncate the half size.
	r = CenteredRect(V(10, 10), 5, 3)
	if r.X != 8 || r.Y != 9 {
		t.Errorf("CenteredRect() origin = (%d, %d), expected (8, 9)", r.X, r.Y)
	}
}
