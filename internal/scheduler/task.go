// Package scheduler converts the missing-skill lists into a prioritized,
// time-boxed task plan and packs the tasks into study days under a daily
// minute budget. It shares its input with the graph but is otherwise
// independent of it: a skill truncated out of the display rings can still
// be scheduled, and vice versa — the two cap sets are deliberately
// separate.
package scheduler

import (
	"fmt"
	"strings"
)

// Tier is a task's priority band. Ordering matters: tasks are generated
// Critical first, then High, then Medium, and the tier fixes both the
// gating level and the estimated duration.
type Tier int

const (
	TierCritical Tier = iota
	TierHigh
	TierMedium
)

// Generation caps per tier.
const (
	criticalCap = 3
	highCap     = 3
	mediumCap   = 4
)

// Level returns the gating level for a tier (1 = Critical).
func (t Tier) Level() int {
	switch t {
	case TierCritical:
		return 1
	case TierHigh:
		return 2
	default:
		return 3
	}
}

// Minutes returns the fixed estimated duration for a tier. A simple
// linear cost model — not learned, not measured.
func (t Tier) Minutes() int {
	switch t {
	case TierCritical:
		return 120
	case TierHigh:
		return 90
	default:
		return 60
	}
}

// Label returns the display name for a tier.
func (t Tier) Label() string {
	switch t {
	case TierCritical:
		return "Critical"
	case TierHigh:
		return "High"
	default:
		return "Medium"
	}
}

func (t Tier) slug() string {
	return strings.ToLower(t.Label())
}

// Task is one study unit generated for a missing skill. Tasks are
// immutable once generated; rebuilding the plan from new input produces a
// new task set.
type Task struct {
	ID       string
	Title    string
	Skill    string
	Tier     Tier
	Level    int
	Minutes  int
	Subtasks []string
}

// newTask builds a task for a skill at a tier. The ID is deterministic
// per skill+tier so regenerated plans stay referentially stable.
func newTask(skill string, tier Tier) Task {
	return Task{
		ID:       fmt.Sprintf("%s-%s", tier.slug(), slugify(skill)),
		Title:    fmt.Sprintf("Learn %s", skill),
		Skill:    skill,
		Tier:     tier,
		Level:    tier.Level(),
		Minutes:  tier.Minutes(),
		Subtasks: subtasksFor(skill, tier),
	}
}

func subtasksFor(skill string, tier Tier) []string {
	switch tier {
	case TierCritical:
		return []string{
			fmt.Sprintf("Cover %s fundamentals with a structured course or docs", skill),
			fmt.Sprintf("Build a small hands-on project using %s", skill),
			fmt.Sprintf("Work through interview-style questions on %s", skill),
			fmt.Sprintf("Pass the %s mastery quiz", skill),
		}
	case TierHigh:
		return []string{
			fmt.Sprintf("Study the core concepts of %s", skill),
			fmt.Sprintf("Apply %s inside an existing project", skill),
			fmt.Sprintf("Pass the %s mastery quiz", skill),
		}
	default:
		return []string{
			fmt.Sprintf("Read an overview of %s", skill),
			fmt.Sprintf("Complete a short tutorial on %s", skill),
			fmt.Sprintf("Pass the %s mastery quiz", skill),
		}
	}
}

// slugify flattens a skill name into an id-safe token.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
