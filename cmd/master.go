package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/verify"
)

var masterCmd = &cobra.Command{
	Use:   "master <skill>",
	Short: "Mark a skill as mastered without a quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skill := args[0]

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := mastery.NewService(st)
		if svc.IsMastered(skill) {
			fmt.Printf("%q is already mastered.\n", skill)
			return nil
		}

		verify.NewBridge(svc).MarkMastered(skill)
		fmt.Printf("Marked %q as mastered.\n", skill)
		return nil
	},
}
