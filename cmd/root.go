package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/analysis"
	"github.com/adasgupta/skillbridge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillbridge",
	Short: "Turn resume gaps into a study plan",
	Long: "SkillBridge — terminal app that maps the skill gaps from a resume analysis,\n" +
		"schedules them into a daily study plan, and verifies mastery with AI quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLBRIDGE_DB env var)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(masterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SKILLBRIDGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadAnalysis returns the persisted analysis result, or the demo input
// when none has been loaded yet. Absent upstream data is never an error.
func loadAnalysis(st *store.Store) *analysis.Result {
	var r analysis.Result
	if st.GetJSON(store.KeyAnalysis, &r) {
		r.Normalize()
		if !r.Empty() {
			return &r
		}
	}
	return analysis.Demo()
}
