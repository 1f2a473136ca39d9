// Package export renders the laid-out skill graph to an image file. The
// output format follows the file extension; gonum/plot supports png, svg,
// pdf, and a few others out of the box.
package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/adasgupta/skillbridge/internal/radial"
	"github.com/adasgupta/skillbridge/internal/skillgraph"
)

// Node fill colors per status.
var statusColors = map[skillgraph.Status]color.Color{
	skillgraph.StatusDetected:        color.RGBA{R: 0x3f, G: 0x9e, B: 0x4f, A: 0xff},
	skillgraph.StatusMissingCore:     color.RGBA{R: 0xd9, G: 0x4a, B: 0x3d, A: 0xff},
	skillgraph.StatusMissingOptional: color.RGBA{R: 0xe0, G: 0xa0, B: 0x30, A: 0xff},
	skillgraph.StatusMastered:        color.RGBA{R: 0x3a, G: 0x6e, B: 0xd8, A: 0xff},
}

var edgeColor = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

// Render draws the graph's radial layout and writes it to path. Node
// status (and so color) is derived through the mastered lookup at render
// time, same as the interactive view.
func Render(g *skillgraph.Graph, mastered func(string) bool, path string) error {
	p := plot.New()
	p.Title.Text = "Skill Map"
	p.HideAxes()

	pos := radial.Layout(g, 0, 0)

	if err := addEdges(p, g, pos); err != nil {
		return err
	}
	if err := addNodes(p, g, pos, mastered); err != nil {
		return err
	}
	if err := addLabels(p, g, pos); err != nil {
		return err
	}

	// Square canvas; the outer ring plus label padding sets the bounds.
	pad := radial.OuterRadius + 40
	p.X.Min, p.X.Max = -pad, pad
	p.Y.Min, p.Y.Max = -pad, pad

	if err := p.Save(7*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("save graph image: %w", err)
	}
	return nil
}

func addEdges(p *plot.Plot, g *skillgraph.Graph, pos map[string]radial.Point) error {
	for _, e := range g.Edges {
		from, ok := pos[e.From]
		if !ok {
			continue
		}
		to, ok := pos[e.To]
		if !ok {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: from.X, Y: -from.Y},
			{X: to.X, Y: -to.Y},
		})
		if err != nil {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
		line.Color = edgeColor
		if e.Kind == skillgraph.EdgeNeeds {
			line.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		}
		p.Add(line)
	}
	return nil
}

func addNodes(p *plot.Plot, g *skillgraph.Graph, pos map[string]radial.Point, mastered func(string) bool) error {
	// One scatter per node keeps per-node color and per-ring sizing.
	for _, n := range g.Nodes {
		pt, ok := pos[n.Name]
		if !ok {
			continue
		}
		scatter, err := plotter.NewScatter(plotter.XYs{{X: pt.X, Y: -pt.Y}})
		if err != nil {
			return fmt.Errorf("node %s: %w", n.Name, err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Shape:  draw.CircleGlyph{},
			Radius: vg.Points(radial.NodeRadius(n.Ring) / 2),
			Color:  nodeColor(g, n, mastered),
		}
		p.Add(scatter)
	}
	return nil
}

func nodeColor(g *skillgraph.Graph, n skillgraph.Node, mastered func(string) bool) color.Color {
	if n.Ring == skillgraph.RingCenter {
		return color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	}
	if c, ok := statusColors[g.Status(n.Name, mastered)]; ok {
		return c
	}
	return edgeColor
}

func addLabels(p *plot.Plot, g *skillgraph.Graph, pos map[string]radial.Point) error {
	xys := make(plotter.XYs, 0, len(g.Nodes))
	texts := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		pt, ok := pos[n.Name]
		if !ok {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.X, Y: -pt.Y - radial.NodeRadius(n.Ring) - 6})
		texts = append(texts, n.Label)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	p.Add(labels)
	return nil
}
