package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/gate"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/scheduler"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the study plan as day buckets",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result := loadAnalysis(st)
		svc := mastery.NewService(st)

		hours, _ := cmd.Flags().GetInt("hours")
		minutes := hours * 60
		if hours <= 0 {
			minutes = svc.DailyMinutes()
		}

		tasks := scheduler.BuildPlan(result.MissingCore, result.MissingOptional)
		if len(tasks) == 0 {
			fmt.Println("No missing skills — nothing to plan.")
			return nil
		}

		buckets := scheduler.Distribute(tasks, minutes)
		states := gate.Evaluate(tasks, svc.Mastered())

		fmt.Printf("Study plan for %q — %d tasks, %d min total at %d min/day\n\n",
			result.Role, len(tasks), scheduler.TotalMinutes(tasks), minutes)

		for _, bucket := range buckets {
			fmt.Printf("Day %d (%d min)\n", bucket.Day, bucket.TotalMinutes)
			for _, t := range bucket.Tasks {
				fmt.Printf("  [%-8s] %-40s %3d min  %s\n",
					t.Tier.Label(), t.Title, t.Minutes, states[t.ID].Label())
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Int("hours", 0, "Daily study hours (default: saved commitment)")
}
