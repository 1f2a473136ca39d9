package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/adasgupta/skillbridge/internal/store"
)

// LoggingProvider records every request as an event in the local store,
// keyed by a fresh attempt ID. Logging failure never fails the request.
type LoggingProvider struct {
	inner Provider
	repo  store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, repo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	event := store.LLMEvent{
		AttemptID: uuid.NewString(),
		Timestamp: start.UTC(),
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		event.Model = resp.Model
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}

	if logErr := l.repo.AppendLLMRequest(ctx, event); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
