package radial

import (
	"math"
	"testing"

	"github.com/adasgupta/skillbridge/internal/skillgraph"
)

const epsilon = 1e-9

func TestLayout_CenterFixed(t *testing.T) {
	g := skillgraph.Build([]string{"a"}, nil, nil, nil)
	pos := Layout(g, 400, 300)

	c := pos[skillgraph.CenterName]
	if c.X != 400 || c.Y != 300 {
		t.Errorf("center at (%v,%v), want (400,300)", c.X, c.Y)
	}
}

func TestLayout_FirstNodeAtTop(t *testing.T) {
	g := skillgraph.Build([]string{"a", "b", "c", "d"}, nil, nil, nil)
	pos := Layout(g, 0, 0)

	// First inner node: angle zero measured from up.
	p := pos["a"]
	if math.Abs(p.X) > epsilon {
		t.Errorf("first node X = %v, want 0", p.X)
	}
	if math.Abs(p.Y+InnerRadius) > epsilon {
		t.Errorf("first node Y = %v, want %v (above center)", p.Y, -InnerRadius)
	}
}

func TestLayout_EqualAngularIncrements(t *testing.T) {
	g := skillgraph.Build([]string{"a", "b", "c", "d"}, nil, nil, nil)
	pos := Layout(g, 0, 0)

	// With 4 nodes the second sits a quarter turn clockwise from up.
	p := pos["b"]
	if math.Abs(p.X-InnerRadius) > epsilon {
		t.Errorf("second node X = %v, want %v", p.X, InnerRadius)
	}
	if math.Abs(p.Y) > epsilon {
		t.Errorf("second node Y = %v, want 0", p.Y)
	}
}

func TestLayout_RingRadii(t *testing.T) {
	g := skillgraph.Build([]string{"a"}, []string{"b"}, []string{"c"}, nil)
	pos := Layout(g, 0, 0)

	checks := []struct {
		name   string
		radius float64
	}{
		{"a", InnerRadius},
		{"b", MiddleRadius},
		{"c", OuterRadius},
	}
	for _, c := range checks {
		p := pos[c.name]
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-c.radius) > epsilon {
			t.Errorf("%s at radius %v, want %v", c.name, r, c.radius)
		}
	}
}

func TestLayout_RingsStaggered(t *testing.T) {
	g := skillgraph.Build([]string{"a"}, []string{"b"}, nil, nil)
	pos := Layout(g, 0, 0)

	angleA := math.Atan2(pos["a"].Y, pos["a"].X)
	angleB := math.Atan2(pos["b"].Y, pos["b"].X)
	if math.Abs(angleA-angleB) < epsilon {
		t.Error("middle ring must be staggered relative to inner ring")
	}
}

func TestLayout_Deterministic(t *testing.T) {
	g := skillgraph.Build(
		[]string{"a", "b", "c"},
		[]string{"d", "e"},
		[]string{"f"},
		nil,
	)
	first := Layout(g, 100, 100)
	second := Layout(g, 100, 100)

	for name, p := range first {
		if second[name] != p {
			t.Errorf("layout not deterministic for %q: %v vs %v", name, p, second[name])
		}
	}
}

func TestRadiusOrdering(t *testing.T) {
	if !(InnerRadius < MiddleRadius && MiddleRadius < OuterRadius) {
		t.Error("ring radii must be strictly increasing")
	}
	if Radius(skillgraph.RingCenter) != 0 {
		t.Error("center ring has no orbit radius")
	}
}
