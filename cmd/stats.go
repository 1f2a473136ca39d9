package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/prereqmap"
	"github.com/adasgupta/skillbridge/internal/scheduler"
	"github.com/adasgupta/skillbridge/internal/skillgraph"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result := loadAnalysis(st)
		svc := mastery.NewService(st)
		prereqs := prereqFetcher().Fetch(cmd.Context())

		tasks := scheduler.BuildPlan(result.MissingCore, result.MissingOptional)
		g := skillgraph.Build(result.Detected, result.MissingCore, result.MissingOptional, prereqs)

		masteredTasks := 0
		for _, t := range tasks {
			if svc.IsMastered(t.Skill) {
				masteredTasks++
			}
		}

		fmt.Printf("Role:             %s\n", result.Role)
		fmt.Printf("Skills mastered:  %d\n", len(svc.MasteredList()))
		fmt.Printf("Plan progress:    %d/%d tasks\n", masteredTasks, len(tasks))
		fmt.Printf("Plan size:        %d min at %dh/day\n",
			scheduler.TotalMinutes(tasks), svc.DailyCommitmentHours())

		counts := g.CategoryCounts()
		categories := make([]string, 0, len(counts))
		for cat := range counts {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		fmt.Println("\nMap by category:")
		for _, cat := range categories {
			fmt.Printf("  %-14s %d\n", cat, counts[cat])
		}

		unlocked := prereqmap.Unlocked(prereqs, svc.Mastered())
		fmt.Printf("\nUnlocked skills (%d):\n", len(unlocked))
		for _, name := range unlocked {
			fmt.Printf("  %s\n", name)
		}
		return nil
	},
}
