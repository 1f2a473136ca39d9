package viewport

import (
	"math/rand"
	"testing"
)

func TestDragPansByRawDelta(t *testing.T) {
	v := New(1.0)
	v.PointerDown(100, 100)
	v.PointerMove(110, 95)
	v.PointerMove(120, 90)

	if v.TranslateX != 20 || v.TranslateY != -10 {
		t.Errorf("got translate (%v,%v), want (20,-10)", v.TranslateX, v.TranslateY)
	}
}

func TestMoveWithoutDownIsNoop(t *testing.T) {
	v := New(1.0)
	v.PointerMove(50, 50)
	if v.TranslateX != 0 || v.TranslateY != 0 {
		t.Error("move without a press must not pan")
	}
}

func TestDragEndsOnUpAndLeave(t *testing.T) {
	v := New(1.0)

	v.PointerDown(0, 0)
	v.PointerUp()
	v.PointerMove(10, 10)
	if v.TranslateX != 0 {
		t.Error("move after release must not pan")
	}

	v.PointerDown(0, 0)
	v.PointerLeave()
	v.PointerMove(10, 10)
	if v.TranslateX != 0 {
		t.Error("move after leaving the canvas must not pan")
	}
}

func TestWheelClampsEveryUpdate(t *testing.T) {
	v := New(1.0)

	// Zoom out far past the floor.
	for i := 0; i < 10000; i++ {
		v.Wheel(100)
		if v.Scale < MinScale || v.Scale > MaxScale {
			t.Fatalf("scale %v escaped [%v,%v]", v.Scale, MinScale, MaxScale)
		}
	}
	if v.Scale != MinScale {
		t.Errorf("got scale %v, want exactly %v", v.Scale, MinScale)
	}

	// Zoom in far past the ceiling.
	for i := 0; i < 10000; i++ {
		v.Wheel(-100)
	}
	if v.Scale != MaxScale {
		t.Errorf("got scale %v, want exactly %v", v.Scale, MaxScale)
	}
}

func TestWheelClampsForAnyDeltaSequence(t *testing.T) {
	v := New(1.0)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		v.Wheel((rng.Float64() - 0.5) * 10000)
		if v.Scale < MinScale || v.Scale > MaxScale {
			t.Fatalf("scale %v out of range after random deltas", v.Scale)
		}
	}
}

func TestReset(t *testing.T) {
	v := New(1.2)
	v.Pan(40, 40)
	v.Wheel(500)
	v.Reset()

	if v.TranslateX != 0 || v.TranslateY != 0 {
		t.Errorf("got translate (%v,%v), want origin", v.TranslateX, v.TranslateY)
	}
	if v.Scale != 1.2 {
		t.Errorf("got scale %v, want default 1.2", v.Scale)
	}
}

func TestNewClampsDefaultScale(t *testing.T) {
	v := New(99)
	if v.Scale != MaxScale {
		t.Errorf("got %v, want clamped default %v", v.Scale, MaxScale)
	}
}

func TestApply(t *testing.T) {
	v := New(2.0)
	v.Pan(10, -5)
	x, y := v.Apply(3, 4)
	if x != 16 || y != 3 {
		t.Errorf("got (%v,%v), want (16,3)", x, y)
	}
}
