package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
	"homekeep/internal/entitlement"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "homekeep",
	Short: "A home inventory tracker",
	Long: `homekeep tracks your household items: what you bought, where it is
stored, when it expires and what happened to it. It also keeps your
shopping list.`,
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// requireAccess checks the subscription gate before a write command runs.
func requireAccess() bool {
	dir, err := entitlement.DefaultDir()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return false
	}
	status, err := entitlement.Check(dir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return false
	}
	if !status.HasAccess() {
		fmt.Println("🔒 Your trial has ended. Run 'homekeep activate' to unlock full access.")
		return false
	}
	return true
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(clearHistoryCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(consumeCmd)
	rootCmd.AddCommand(recycleCmd)
	rootCmd.AddCommand(disposeCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(versionCmd)
}
