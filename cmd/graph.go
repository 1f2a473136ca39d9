package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/skillgraph"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the skill graph as text",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result := loadAnalysis(st)
		svc := mastery.NewService(st)
		g := skillgraph.Build(result.Detected, result.MissingCore, result.MissingOptional,
			prereqFetcher().Fetch(cmd.Context()))

		rings := []struct {
			name string
			ring skillgraph.Ring
		}{
			{"Detected", skillgraph.RingInner},
			{"Core gaps", skillgraph.RingMiddle},
			{"Optional gaps", skillgraph.RingOuter},
		}

		fmt.Printf("Skill map for %q\n\n", result.Role)
		for _, r := range rings {
			nodes := g.RingNodes(r.ring)
			fmt.Printf("%s (%d)\n", r.name, len(nodes))
			for _, n := range nodes {
				status := g.Status(n.Name, svc.Mastered())
				fmt.Printf("  %-24s %s\n", n.Name, status.Label())
			}
			fmt.Println()
		}

		fmt.Printf("Edges: %d\n", len(g.Edges))
		for _, e := range g.Edges {
			arrow := "->"
			if e.Kind == skillgraph.EdgeNeeds {
				arrow = "=>"
			}
			fmt.Printf("  %s %s %s\n", e.From, arrow, e.To)
		}
		return nil
	},
}
