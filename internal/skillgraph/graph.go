package skillgraph

import (
	"strings"

	"github.com/adasgupta/skillbridge/internal/prereqmap"
)

// Graph is the node/edge set for one analysis result. Edges are a flat
// slice in deterministic order; nothing here walks the prerequisite
// structure, so cyclic maps cannot loop.
type Graph struct {
	Nodes []Node
	Edges []Edge

	index map[string]int // name -> position in Nodes
}

// Build constructs the graph from the three skill lists and the
// prerequisite map. Each list is truncated to its ring cap, names are
// deduplicated case-insensitively by first occurrence across all lists,
// and prerequisite edges whose endpoints are not retained are dropped.
func Build(detected, missingCore, missingOptional []string, prereqs prereqmap.Map) *Graph {
	g := &Graph{index: make(map[string]int)}

	g.addNode(Node{Name: CenterName, Label: "You", Ring: RingCenter})

	g.addRing(detected, RingInner, InnerCap)
	g.addRing(missingCore, RingMiddle, MiddleCap)
	g.addRing(missingOptional, RingOuter, OuterCap)

	// Center "has" edges to every retained detected skill.
	for _, n := range g.Nodes {
		if n.Ring == RingInner {
			g.Edges = append(g.Edges, Edge{From: CenterName, To: n.Name, Kind: EdgeHas})
		}
	}

	// Prerequisite "needs" edges, pruned to retained nodes on both ends.
	// Iterate nodes rather than the map so edge order is deterministic.
	for _, n := range g.Nodes {
		if n.Ring == RingCenter {
			continue
		}
		for _, p := range prereqs.Prerequisites(n.Name) {
			if g.Has(p) && p != n.Name {
				g.Edges = append(g.Edges, Edge{From: p, To: n.Name, Kind: EdgeNeeds})
			}
		}
	}

	return g
}

func (g *Graph) addRing(skills []string, ring Ring, limit int) {
	added := 0
	for _, s := range skills {
		if added >= limit {
			break
		}
		name := strings.ToLower(strings.TrimSpace(s))
		if name == "" || g.Has(name) {
			continue
		}
		g.addNode(Node{
			Name:     name,
			Label:    displayLabel(name),
			Ring:     ring,
			Category: prereqmap.CategoryOf(name),
		})
		added++
	}
}

func (g *Graph) addNode(n Node) {
	g.index[n.Name] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
}

// Has reports whether a node with the given name is in the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Node returns the node with the given name.
func (g *Graph) Node(name string) (Node, bool) {
	i, ok := g.index[name]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// RingNodes returns the nodes of one ring in insertion order.
func (g *Graph) RingNodes(ring Ring) []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Ring == ring {
			out = append(out, n)
		}
	}
	return out
}

// Status derives a node's status from the mastery set at read time.
// The mastered state wins over the original classification.
func (g *Graph) Status(name string, mastered func(string) bool) Status {
	if mastered != nil && mastered(name) {
		return StatusMastered
	}
	n, ok := g.Node(name)
	if !ok {
		return StatusDetected
	}
	switch n.Ring {
	case RingMiddle:
		return StatusMissingCore
	case RingOuter:
		return StatusMissingOptional
	default:
		return StatusDetected
	}
}

// CategoryCounts tallies non-center nodes per category tag for the
// learning-density view.
func (g *Graph) CategoryCounts() map[string]int {
	out := make(map[string]int)
	for _, n := range g.Nodes {
		if n.Ring == RingCenter {
			continue
		}
		out[n.Category]++
	}
	return out
}
