package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
	"homekeep/internal/views"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show consumed, recycled and disposed items",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		items, err := db.ListNonActive()
		if err != nil {
			fmt.Printf("Error fetching history: %v\n", err)
			return
		}

		search, _ := cmd.Flags().GetString("search")
		groups := views.GroupHistoryByStatus(items, search)
		if len(groups) == 0 {
			fmt.Println("History is empty.")
			return
		}

		for _, group := range groups {
			fmt.Printf("\n%s\n", group.Label)
			for _, item := range group.Items {
				fmt.Printf("  #%-4d %-40s %-6s bought %s, since %s\n",
					item.ID,
					truncate(item.Name, 40),
					item.Amount,
					item.DateBought,
					item.DateStatusChange)
			}
		}
	},
}

var clearHistoryCmd = &cobra.Command{
	Use:   "clear-history",
	Short: "Permanently delete all non-active items",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This permanently deletes every item in history. Re-run with --yes to confirm.")
			return
		}

		if err := db.DeleteAllNonActive(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🗑️  History cleared.")
	},
}

func init() {
	historyCmd.Flags().StringP("search", "q", "", "Filter by name")
	clearHistoryCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}
