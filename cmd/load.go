package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/analysis"
	"github.com/adasgupta/skillbridge/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load <analysis.json>",
	Short: "Load a resume analysis result",
	Long: "Load a resume analysis JSON file (role, detected skills, missing core and\n" +
		"optional skills) and persist it as the active input for the map and plan.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := analysis.Load(args[0])
		if err != nil {
			return fmt.Errorf("load analysis: %w", err)
		}
		if result.Empty() {
			return fmt.Errorf("analysis file %q has no skills in it", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SetJSON(store.KeyAnalysis, result); err != nil {
			return fmt.Errorf("persist analysis: %w", err)
		}

		fmt.Printf("Loaded analysis for role %q: %d detected, %d core gaps, %d optional gaps\n",
			result.Role, len(result.Detected), len(result.MissingCore), len(result.MissingOptional))
		return nil
	},
}
