package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/llm"
	"github.com/adasgupta/skillbridge/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM request log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		events, err := st.EventRepo().QueryLLMEvents(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query LLM events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-20s %-10s %-26s %-16s %7s %7s %8s %9s  %s\n",
			"TIME", "PROVIDER", "MODEL", "PURPOSE", "IN", "OUT", "LATENCY", "COST", "STATUS")
		for _, e := range events {
			fmt.Printf("%-20s %-10s %-26s %-16s %7d %7d %6dms %9s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Provider,
				truncate(e.Model, 26),
				truncate(e.Purpose, 16),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				formatCost(e),
				statusLabel(e))
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize LLM usage and cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QueryLLMEvents(cmd.Context(), 100000)
		if err != nil {
			return fmt.Errorf("query LLM events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		var inTok, outTok int
		var failures int
		var totalCost float64
		var costKnown bool
		for _, e := range events {
			inTok += e.InputTokens
			outTok += e.OutputTokens
			if !e.Success {
				failures++
			}
			if c := llm.LookupCost(e.Model); c != nil {
				totalCost += c.Cost(e.InputTokens, e.OutputTokens)
				costKnown = true
			}
		}

		fmt.Printf("Requests:       %d (%d failed)\n", len(events), failures)
		fmt.Printf("Input tokens:   %d\n", inTok)
		fmt.Printf("Output tokens:  %d\n", outTok)
		if costKnown {
			fmt.Printf("Estimated cost: $%.4f\n", totalCost)
		}
		return nil
	},
}

func statusLabel(e store.LLMEvent) string {
	if e.Success {
		return "ok"
	}
	if e.ErrorMessage != "" {
		return "error: " + truncate(e.ErrorMessage, 40)
	}
	return "error"
}

func formatCost(e store.LLMEvent) string {
	c := llm.LookupCost(e.Model)
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("$%.4f", c.Cost(e.InputTokens, e.OutputTokens))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of requests to show")
	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
