package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adasgupta/skillbridge/internal/selfupdate"
)

// version is set at build time via -ldflags "-X ...cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("skillbridge %s\n", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		result, err := selfupdate.NewChecker().Check(cmd.Context(), version)
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Development build; skipping update check.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}

		if result.UpdateAvailable {
			fmt.Printf("Update available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
			fmt.Printf("  %s\n", result.ReleaseURL)
		} else {
			fmt.Println("Already on the latest release.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
