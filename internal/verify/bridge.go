// Package verify is the contract between a task's skill and the quiz
// provider's outcome. It is the only path by which a skill enters the
// mastery set: a perfect quiz score, or an explicit manual mark.
package verify

import "github.com/adasgupta/skillbridge/internal/mastery"

// Outcome is the graded result of one quiz attempt.
type Outcome struct {
	Skill   string
	Correct int
	Total   int
}

// Perfect reports whether every question was answered correctly. An
// attempt with no questions is never perfect.
func (o Outcome) Perfect() bool {
	return o.Total > 0 && o.Correct == o.Total
}

// Bridge applies quiz outcomes and manual marks to the mastery set.
type Bridge struct {
	mastery *mastery.Service
}

// NewBridge creates a bridge over the learner state service.
func NewBridge(m *mastery.Service) *Bridge {
	return &Bridge{mastery: m}
}

// ApplyOutcome records a quiz outcome. Only a perfect score mutates the
// mastery set; partial scores are feedback for the learner and leave
// state untouched. Returns whether the skill was granted.
func (b *Bridge) ApplyOutcome(o Outcome) bool {
	if !o.Perfect() {
		return false
	}
	b.mastery.GrantMastery(o.Skill)
	return true
}

// MarkMastered grants mastery without a quiz — for skills the learner
// already holds, such as ones the resume itself showed as detected.
func (b *Bridge) MarkMastered(skill string) {
	b.mastery.GrantMastery(skill)
}
