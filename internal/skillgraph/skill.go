// Package skillgraph builds the skill dependency graph from an analysis
// result and a prerequisite map. The graph is a display model: nodes are
// the retained skills arranged in rings around a fixed center node, edges
// are a flat list that is drawn but never traversed.
package skillgraph

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Status is a skill's state relative to the learner. It is derived at
// read time from the mastery set, never stored on a node.
type Status int

const (
	StatusDetected Status = iota // On the resume already
	StatusMissingCore
	StatusMissingOptional
	StatusMastered // In the mastery set, whatever its origin
)

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusDetected:
		return "Detected"
	case StatusMissingCore:
		return "Missing (core)"
	case StatusMissingOptional:
		return "Missing (optional)"
	case StatusMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// Ring is a node's placement band in the radial layout.
type Ring int

const (
	RingCenter Ring = iota // The single "You" node
	RingInner              // Detected skills
	RingMiddle             // Missing core skills
	RingOuter              // Missing optional skills
)

// Display caps per ring. Skills beyond a cap are not graphed; the
// scheduler applies its own independent caps to the same lists.
const (
	InnerCap  = 10
	MiddleCap = 6
	OuterCap  = 5
)

// CenterName is the identity of the fixed center node.
const CenterName = "you"

// Node is a skill placed in a ring. Name is the lower-cased identity;
// Label is what gets rendered.
type Node struct {
	Name     string
	Label    string
	Ring     Ring
	Category string
}

// EdgeKind distinguishes the two edge families in the graph.
type EdgeKind string

const (
	// EdgeHas connects the center node to each detected skill.
	EdgeHas EdgeKind = "has"
	// EdgeNeeds connects a prerequisite to its dependent skill.
	EdgeNeeds EdgeKind = "needs"
)

// Edge is a directed pair of node names. Both endpoints always reference
// nodes present in the graph; Build prunes anything else.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
}

// displayLabel renders a stored lower-cased name for the UI.
func displayLabel(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if len(w) <= 3 && !strings.ContainsAny(w, "aeiou") {
			// Short consonant-only tokens are almost always initialisms
			// (sql, css, dfs, bfs).
			words[i] = strings.ToUpper(w)
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
