// Package gate derives the open/locked state of study levels from the
// task list and the mastery set. Nothing is persisted: every read
// recomputes the gate, so mastering a skill unlocks the next level on the
// very next evaluation.
package gate

import (
	"fmt"

	"github.com/adasgupta/skillbridge/internal/scheduler"
)

// State is a task's effective state for the UI.
// Precedence: Mastered > Locked > Open.
type State int

const (
	StateOpen State = iota
	StateLocked
	StateMastered
)

// Label returns the display name for a state.
func (s State) Label() string {
	switch s {
	case StateOpen:
		return "Open"
	case StateLocked:
		return "Locked"
	default:
		return "Mastered"
	}
}

// LevelOpen reports whether a level is open: level 1 always is, and a
// higher level opens once every task at every lower level has its skill
// in the mastery set. Gating on all lower levels (not just L-1) keeps
// the ordering invariant intact when a tier is absent — a plan with
// Critical and Medium tasks but no High tasks must not leave level 3
// vacuously open.
func LevelOpen(tasks []scheduler.Task, level int, mastered func(string) bool) bool {
	if level <= 1 {
		return true
	}
	for _, t := range tasks {
		checkLevel(t)
		if t.Level < level && !mastered(t.Skill) {
			return false
		}
	}
	return true
}

// TaskState computes one task's effective state against the full task
// list and the mastery set.
func TaskState(task scheduler.Task, tasks []scheduler.Task, mastered func(string) bool) State {
	checkLevel(task)
	if mastered(task.Skill) {
		return StateMastered
	}
	if !LevelOpen(tasks, task.Level, mastered) {
		return StateLocked
	}
	return StateOpen
}

// Evaluate computes the effective state of every task, keyed by task ID.
func Evaluate(tasks []scheduler.Task, mastered func(string) bool) map[string]State {
	out := make(map[string]State, len(tasks))
	for _, t := range tasks {
		out[t.ID] = TaskState(t, tasks, mastered)
	}
	return out
}

// checkLevel guards the scheduler contract. A nonpositive level is a
// generation bug, not learner state; fail loudly so tests catch it.
func checkLevel(t scheduler.Task) {
	if t.Level < 1 {
		panic(fmt.Sprintf("gate: task %q has invalid level %d", t.ID, t.Level))
	}
}
