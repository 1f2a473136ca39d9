package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Persisted state keys.
const (
	KeyMasteredSkills  = "mastered_skills"
	KeyCompletedTasks  = "completed_tasks"
	KeyPinnedSkills    = "pinned_skills"
	KeyDailyCommitment = "daily_commitment_hours"
	KeyAnalysis        = "analysis_result"
)

// GetJSON loads the value at key into dst. Returns false when the key is
// absent or the stored value fails to parse — the caller keeps its
// default and the bad value stays isolated to this key.
func (s *Store) GetJSON(key string, dst any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false
	}
	return true
}

// SetJSON stores a JSON-serialized value at key.
func (s *Store) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// GetStrings loads a string list, defaulting to nil.
func (s *Store) GetStrings(key string) []string {
	var out []string
	if !s.GetJSON(key, &out) {
		return nil
	}
	return out
}

// SetStrings stores a string list.
func (s *Store) SetStrings(key string, v []string) error {
	if v == nil {
		v = []string{}
	}
	return s.SetJSON(key, v)
}

// GetInt loads an integer, returning def when absent or corrupt.
func (s *Store) GetInt(key string, def int) int {
	var out int
	if !s.GetJSON(key, &out) {
		return def
	}
	return out
}

// SetInt stores an integer.
func (s *Store) SetInt(key string, v int) error {
	return s.SetJSON(key, v)
}

// Delete removes a single key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// ClearAll wipes every state key and the event log. This backs the
// explicit "clear all data" action — the only way learner state shrinks.
func (s *Store) ClearAll() error {
	var errs []error
	if _, err := s.db.Exec(`DELETE FROM state`); err != nil {
		errs = append(errs, fmt.Errorf("clear state: %w", err))
	}
	if _, err := s.db.Exec(`DELETE FROM llm_events`); err != nil {
		errs = append(errs, fmt.Errorf("clear events: %w", err))
	}
	return errors.Join(errs...)
}
