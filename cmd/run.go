package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/app"
	"github.com/adasgupta/skillbridge/internal/llm"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/prereqmap"
	"github.com/adasgupta/skillbridge/internal/quiz"
	"github.com/adasgupta/skillbridge/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := app.Options{
		Result:  loadAnalysis(st),
		Mastery: mastery.NewService(st),
		Fetcher: prereqFetcher(),
	}

	provider, err := newLLMProvider(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quizzes will be unavailable; use 'skillbridge master' to mark skills by hand.")
	} else {
		opts.Quizzes = quiz.NewGenerator(provider)
	}

	return app.Run(opts)
}

// prereqFetcher builds the prerequisite map client. Without a configured
// service URL the built-in curriculum serves as the fetch fallback.
func prereqFetcher() *prereqmap.Client {
	return prereqmap.NewClient(os.Getenv("SKILLBRIDGE_PREREQ_URL"), prereqmap.Builtin())
}

// newLLMProvider resolves provider config from SKILLBRIDGE_* variables,
// falling back to discovery of the conventional provider key variables.
func newLLMProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, st.EventRepo())
}
