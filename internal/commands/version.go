package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"homekeep/internal/entitlement"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("homekeep %s (commit %s, built %s)\n", version, commit, date)
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Unlock full access",
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := entitlement.DefaultDir()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := entitlement.Activate(dir); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("✅ Full access unlocked. Thank you!")
	},
}
