// Package radial assigns 2-D coordinates to skill graph nodes. The center
// node sits at the canvas center and each ring is spread at equal angular
// increments on a fixed radius. The layout is a pure function of node
// order — no physics, no iteration to convergence.
package radial

import (
	"math"

	"github.com/adasgupta/skillbridge/internal/skillgraph"
)

// Ring radii in canvas units, inner < middle < outer.
const (
	InnerRadius  = 90.0
	MiddleRadius = 150.0
	OuterRadius  = 210.0
)

// ringStagger is the fixed angular offset applied cumulatively to rings
// after the first so successive rings are not radially aligned. Cosmetic
// only; it does not guarantee no overlap across rings.
const ringStagger = math.Pi / 12

// Node visual radii per ring.
const (
	centerNodeRadius = 30.0
	innerNodeRadius  = 16.0
	middleNodeRadius = 14.0
	outerNodeRadius  = 12.0
)

// Point is a Cartesian canvas position.
type Point struct {
	X float64
	Y float64
}

// Layout computes positions for every node in the graph around the given
// canvas center. The same graph always yields the same positions.
func Layout(g *skillgraph.Graph, cx, cy float64) map[string]Point {
	pos := make(map[string]Point, len(g.Nodes))
	pos[skillgraph.CenterName] = Point{X: cx, Y: cy}

	placeRing(pos, g.RingNodes(skillgraph.RingInner), cx, cy, InnerRadius, 0)
	placeRing(pos, g.RingNodes(skillgraph.RingMiddle), cx, cy, MiddleRadius, ringStagger)
	placeRing(pos, g.RingNodes(skillgraph.RingOuter), cx, cy, OuterRadius, 2*ringStagger)

	return pos
}

// placeRing spreads nodes at equal increments of a full turn, starting
// from "up" (12 o'clock) plus the ring's stagger offset.
func placeRing(pos map[string]Point, nodes []skillgraph.Node, cx, cy, radius, offset float64) {
	if len(nodes) == 0 {
		return
	}
	step := 2 * math.Pi / float64(len(nodes))
	for i, n := range nodes {
		// Angle measured clockwise from up: rotate the standard polar
		// zero-point by -90 degrees.
		theta := offset + step*float64(i) - math.Pi/2
		pos[n.Name] = Point{
			X: cx + radius*math.Cos(theta),
			Y: cy + radius*math.Sin(theta),
		}
	}
}

// Radius returns the fixed orbit radius for a ring. The center has no
// orbit and returns 0.
func Radius(ring skillgraph.Ring) float64 {
	switch ring {
	case skillgraph.RingInner:
		return InnerRadius
	case skillgraph.RingMiddle:
		return MiddleRadius
	case skillgraph.RingOuter:
		return OuterRadius
	default:
		return 0
	}
}

// NodeRadius returns the visual radius used when drawing a node.
func NodeRadius(ring skillgraph.Ring) float64 {
	switch ring {
	case skillgraph.RingCenter:
		return centerNodeRadius
	case skillgraph.RingInner:
		return innerNodeRadius
	case skillgraph.RingMiddle:
		return middleNodeRadius
	default:
		return outerNodeRadius
	}
}
