package store

import (
	"context"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStringsRoundTrip(t *testing.T) {
	s := openTest(t)

	if got := s.GetStrings(KeyMasteredSkills); got != nil {
		t.Errorf("absent key should default to nil, got %v", got)
	}

	if err := s.SetStrings(KeyMasteredSkills, []string{"docker", "git"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got := s.GetStrings(KeyMasteredSkills)
	if len(got) != 2 || got[0] != "docker" {
		t.Errorf("got %v, want [docker git]", got)
	}
}

func TestIntDefault(t *testing.T) {
	s := openTest(t)

	if got := s.GetInt(KeyDailyCommitment, 2); got != 2 {
		t.Errorf("got %d, want default 2", got)
	}
	if err := s.SetInt(KeyDailyCommitment, 4); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.GetInt(KeyDailyCommitment, 2); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

func TestCorruptKeyDegradesAlone(t *testing.T) {
	s := openTest(t)

	if err := s.SetStrings(KeyPinnedSkills, []string{"aws"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Corrupt one key directly.
	if _, err := s.DB().Exec(`INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)`,
		KeyMasteredSkills, `{broken`); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	if got := s.GetStrings(KeyMasteredSkills); got != nil {
		t.Errorf("corrupt key must fall back to default, got %v", got)
	}
	if got := s.GetStrings(KeyPinnedSkills); len(got) != 1 {
		t.Errorf("other keys must be unaffected, got %v", got)
	}
}

func TestClearAll(t *testing.T) {
	s := openTest(t)

	_ = s.SetStrings(KeyMasteredSkills, []string{"docker"})
	_ = s.SetInt(KeyDailyCommitment, 3)
	if err := s.ClearAll(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if got := s.GetStrings(KeyMasteredSkills); got != nil {
		t.Errorf("got %v after clear, want nil", got)
	}
	if got := s.GetInt(KeyDailyCommitment, 2); got != 2 {
		t.Errorf("got %d after clear, want default", got)
	}
}

func TestEventLog(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(ctx, LLMEvent{
		AttemptID: "att-1",
		Provider:  "mock",
		Model:     "mock",
		Purpose:   "quiz-generation",
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Purpose != "quiz-generation" || !events[0].Success {
		t.Errorf("event malformed: %+v", events[0])
	}
}
