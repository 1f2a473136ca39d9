// Package mastery holds the process-wide learner state: the mastered
// skill set, the daily study commitment, completed tasks, and pinned
// skills. It is an explicitly passed, observable store — components read
// through it and subscribe to changes; only the verification bridge (and
// the user's preference actions) mutate it.
package mastery

import (
	"sort"
	"strings"

	"github.com/adasgupta/skillbridge/internal/scheduler"
	"github.com/adasgupta/skillbridge/internal/store"
)

// Persister is the slice of the store the service needs. Tests substitute
// a nil persister for a memory-only service.
type Persister interface {
	GetStrings(key string) []string
	SetStrings(key string, v []string) error
	GetInt(key string, def int) int
	SetInt(key string, v int) error
	ClearAll() error
}

// Service is the learner state store. Not safe for concurrent use; the
// app runs on a single event loop.
type Service struct {
	persist Persister

	mastered  map[string]bool
	completed map[string]bool
	pinned    map[string]bool
	hours     int

	subs []func()
}

// NewService loads learner state from the persister. A nil persister
// yields an in-memory service with defaults.
func NewService(p Persister) *Service {
	s := &Service{
		persist:   p,
		mastered:  make(map[string]bool),
		completed: make(map[string]bool),
		pinned:    make(map[string]bool),
		hours:     scheduler.DefaultDailyHours,
	}
	if p == nil {
		return s
	}
	for _, name := range p.GetStrings(store.KeyMasteredSkills) {
		s.mastered[normalize(name)] = true
	}
	for _, id := range p.GetStrings(store.KeyCompletedTasks) {
		s.completed[id] = true
	}
	for _, name := range p.GetStrings(store.KeyPinnedSkills) {
		s.pinned[normalize(name)] = true
	}
	s.hours = p.GetInt(store.KeyDailyCommitment, scheduler.DefaultDailyHours)
	if s.hours < 1 {
		s.hours = scheduler.DefaultDailyHours
	}
	return s
}

// Subscribe registers a callback invoked after every state change.
func (s *Service) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Service) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// IsMastered reports whether a skill is in the mastery set.
func (s *Service) IsMastered(skill string) bool {
	return s.mastered[normalize(skill)]
}

// Mastered returns the lookup function consumed by the graph and gate.
func (s *Service) Mastered() func(string) bool {
	return s.IsMastered
}

// MasteredList returns the mastery set sorted for stable display.
func (s *Service) MasteredList() []string {
	out := make([]string, 0, len(s.mastered))
	for name := range s.mastered {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// GrantMastery inserts a skill into the mastery set. The verification
// bridge is the only production caller; no component may grant mastery
// as a side effect of rendering or layout.
func (s *Service) GrantMastery(skill string) {
	name := normalize(skill)
	if name == "" || s.mastered[name] {
		return
	}
	s.mastered[name] = true
	s.save(store.KeyMasteredSkills, s.mastered)
	s.notify()
}

// DailyCommitmentHours returns the learner's daily study budget in hours.
func (s *Service) DailyCommitmentHours() int {
	return s.hours
}

// DailyMinutes returns the daily budget in scheduler units.
func (s *Service) DailyMinutes() int {
	return s.hours * 60
}

// SetDailyCommitmentHours updates the daily budget. Values below one hour
// are clamped to one.
func (s *Service) SetDailyCommitmentHours(hours int) {
	if hours < 1 {
		hours = 1
	}
	if hours == s.hours {
		return
	}
	s.hours = hours
	if s.persist != nil {
		_ = s.persist.SetInt(store.KeyDailyCommitment, hours)
	}
	s.notify()
}

// ToggleTaskCompleted flips a task's done flag. Task completion is a
// personal checklist; it does not feed the mastery set.
func (s *Service) ToggleTaskCompleted(taskID string) {
	if s.completed[taskID] {
		delete(s.completed, taskID)
	} else {
		s.completed[taskID] = true
	}
	s.save(store.KeyCompletedTasks, s.completed)
	s.notify()
}

// IsTaskCompleted reports whether a task is checked off.
func (s *Service) IsTaskCompleted(taskID string) bool {
	return s.completed[taskID]
}

// TogglePinned flips a skill's pinned flag in the skill map.
func (s *Service) TogglePinned(skill string) {
	name := normalize(skill)
	if s.pinned[name] {
		delete(s.pinned, name)
	} else {
		s.pinned[name] = true
	}
	s.save(store.KeyPinnedSkills, s.pinned)
	s.notify()
}

// IsPinned reports whether a skill is pinned.
func (s *Service) IsPinned(skill string) bool {
	return s.pinned[normalize(skill)]
}

// Reset clears all learner state — the only action that shrinks the
// mastery set.
func (s *Service) Reset() error {
	s.mastered = make(map[string]bool)
	s.completed = make(map[string]bool)
	s.pinned = make(map[string]bool)
	s.hours = scheduler.DefaultDailyHours
	var err error
	if s.persist != nil {
		err = s.persist.ClearAll()
	}
	s.notify()
	return err
}

func (s *Service) save(key string, set map[string]bool) {
	if s.persist == nil {
		return
	}
	list := make([]string, 0, len(set))
	for name := range set {
		list = append(list, name)
	}
	sort.Strings(list)
	_ = s.persist.SetStrings(key, list)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
