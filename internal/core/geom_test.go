package core

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := V(3, -4)
	b := V(1, 2)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add() = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != V(2, -6) {
		t.Errorf("Sub() = %v, expected (2, -6)", got)
	}
	if got := b.Scale(2.5); got != V(2.5, 5) {
		t.Errorf("Scale() = %v, expected (2.5, 5)", got)
	}
	if got := a.Abs(); got != V(3, 4) {
		t.Errorf("Abs() = %v, expected (3, 4)", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if c := r.Center(); c != V(15, 17.5) {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
}

func TestRectAtAndCenteredOn(t *testing.T) {
	r := RectAt(V(10, 20), V(30, 40))
	if r != NewRect(10, 20, 30, 40) {
		t.Errorf("RectAt() = %+v", r)
	}

	c := CenteredOn(V(100, 100), V(20, 10))
	if c != NewRect(90, 95, 20, 10) {
		t.Errorf("CenteredOn() = %+v, expected {90 95 20 10}", c)
	}
	if c.Center() != V(100, 100) {
		t.Errorf("CenteredOn().Center() = %v, expected (100, 100)", c.Center())
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{7, 10, 5, 10}, // inverted bounds favor min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
