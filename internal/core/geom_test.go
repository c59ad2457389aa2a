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

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 32, 16)
	inner := outer.Centered(20, 4)

	if inner.X != 6 || inner.Y != 6 {
		t.Errorf("Centered() at (%d, %d), expected (6, 6)", inner.X, inner.Y)
	}
	if inner.W != 20 || inner.H != 4 {
		t.Errorf("Centered() size %dx%d, expected 20x4", inner.W, inner.H)
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

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Pressed() {
		t.Error("New frame should have nothing pressed")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || !f.Pressed() {
		t.Error("Expected ActionLeft to be set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Pressed() {
		t.Error("Cleared frame should have nothing pressed")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should keep its actions after the original is cleared")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" {
		t.Errorf("Expected Right, got %s", ActionRight)
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", Action(99))
	}
}
