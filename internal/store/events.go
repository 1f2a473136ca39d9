package store

import (
	"context"
	"fmt"
	"time"
)

// LLMEvent is one recorded LLM API call.
type LLMEvent struct {
	ID           int
	AttemptID    string
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to the LLM event log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, e LLMEvent) error
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{store: s}
}

type eventRepo struct {
	store *Store
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, e LLMEvent) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO llm_events
		 (attempt_id, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.AttemptID, ts.Format(time.RFC3339), e.Provider, e.Model, e.Purpose,
		e.InputTokens, e.OutputTokens, e.LatencyMs, boolToInt(e.Success), e.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append LLM event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, attempt_id, timestamp, provider, model, purpose,
		        input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []LLMEvent
	for rows.Next() {
		var e LLMEvent
		var ts string
		var success int
		if err := rows.Scan(&e.ID, &e.AttemptID, &ts, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		e.Success = success != 0
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Timestamp = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
