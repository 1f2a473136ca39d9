package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/export"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/skillgraph"
)

var exportCmd = &cobra.Command{
	Use:   "export [output.png]",
	Short: "Render the skill map to an image",
	Long: "Render the radial skill map to an image file. The output format follows\n" +
		"the file extension (.png, .svg, .pdf).",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := "skillmap.png"
		if len(args) == 1 {
			out = args[0]
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result := loadAnalysis(st)
		svc := mastery.NewService(st)
		g := skillgraph.Build(result.Detected, result.MissingCore, result.MissingOptional,
			prereqFetcher().Fetch(cmd.Context()))

		if err := export.Render(g, svc.Mastered(), out); err != nil {
			return fmt.Errorf("render skill map: %w", err)
		}
		fmt.Printf("Wrote %s (%d nodes, %d edges)\n", out, len(g.Nodes), len(g.Edges))
		return nil
	},
}
