package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
	"homekeep/internal/tui"
	"homekeep/internal/views"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "Browse the inventory grouped by room",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		roomID := db.AllRoomsID
		if room, _ := cmd.Flags().GetString("room"); room != "" {
			id, err := db.ResolveTag(db.VocabRoom, db.NormalizeLabel(room))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			roomID = id
		}

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			if err := tui.RunBrowse(roomID); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		items, err := db.ListActive(roomID)
		if err != nil {
			fmt.Printf("Error fetching items: %v\n", err)
			return
		}

		search, _ := cmd.Flags().GetString("search")
		groups := views.GroupInventoryByRoom(items, search)
		if len(groups) == 0 {
			fmt.Println("No items found. Use 'homekeep add \"item name\"' to track your first item.")
			return
		}

		now := time.Now()
		for _, group := range groups {
			fmt.Printf("\n%s\n", group.Label)
			for _, item := range group.Items {
				fmt.Printf("  #%-4d %-40s %-6s %-8s %s\n",
					item.ID,
					truncate(item.Name, 40),
					item.Amount,
					item.Cost,
					views.DaysLeftLabel(item, now))
			}
		}
	},
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

func init() {
	listCmd.Flags().StringP("room", "r", "", "Only show one room")
	listCmd.Flags().StringP("search", "q", "", "Filter by name")
	listCmd.Flags().BoolP("interactive", "i", false, "Interactive browser")
}
