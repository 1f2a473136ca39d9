package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/mastery"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all mastery progress",
	Long: "Clear the mastery set, completed tasks, and pins. The loaded analysis and\n" +
		"the LLM event log are kept. Requires --yes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := mastery.NewService(st).Reset(); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
