package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "empty rect never overlaps",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 0, 5),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, -5, 10, 10)

	got := a.Intersect(b)
	want := NewRect(5, 0, 5, 5)
	if got != want {
		t.Errorf("Intersect() = %+v, expected %+v", got, want)
	}

	if !a.Intersect(NewRect(20, 20, 5, 5)).Empty() {
		t.Error("Intersect of disjoint rects should be empty")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{10.0, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -4})
	if v != (Vec2{X: 4, Y: -2}) {
		t.Errorf("Add() = %+v, expected {4 -2}", v)
	}
	s := Vec2{X: -100, Y: 50}.Scale(0.5)
	if s != (Vec2{X: -50, Y: 25}) {
		t.Errorf("Scale() = %+v, expected {-50 25}", s)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(124, 199, 232).Hex(); got != "#7cc7e8" {
		t.Errorf("Hex() = %q, expected #7cc7e8", got)
	}
}

func TestDirectionString(t *testing.T) {
	if DirLeft.String() != "Left" || DirRight.String() != "Right" || DirNone.String() != "None" {
		t.Error("unexpected direction names")
	}
	if Direction(7).String() != "Unknown" {
		t.Error("out-of-range direction should be Unknown")
	}
}
