package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
	"homekeep/internal/models"
	"homekeep/internal/parser"
	"homekeep/internal/views"
)

var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"dashboard"},
	Short:   "Show spend and expiry overview",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		now := time.Now()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		period := "month"
		if yearly, _ := cmd.Flags().GetBool("year"); yearly {
			start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
			period = "year"
		}
		dr := views.DateRange{
			Start: parser.FormatISODate(start),
			End:   parser.FormatISODate(now),
		}

		// The snapshot wants every item: history rows feed the recycled and
		// disposed counters, active rows feed the expiry buckets.
		active, err := db.ListActive(db.AllRoomsID)
		if err != nil {
			fmt.Printf("Error fetching items: %v\n", err)
			return
		}
		nonActive, err := db.ListNonActive()
		if err != nil {
			fmt.Printf("Error fetching history: %v\n", err)
			return
		}
		snap := views.ComputeDashboard(append(active, nonActive...), now, dr)

		fmt.Printf("Spent this %s: %.2f\n", period, snap.TotalSpent)
		fmt.Printf("Recycled: %d (%d with leftovers)\n", snap.RecycledCount, snap.RecycledWastageCount)
		fmt.Printf("Disposed: %d (%d with leftovers)\n", snap.DisposedCount, snap.DisposedWastageCount)

		printBucket("⚠️  Expiring within a week", snap.ExpiringWithinWeek, now)
		printBucket("❌ Expired food", snap.ExpiredFood, now)
		printBucket("🔁 Replace within a month", snap.ReplaceSoon, now)
	},
}

func printBucket(header string, items []models.StoreItem, now time.Time) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s\n", header)
	for _, item := range items {
		fmt.Printf("  #%-4d %-40s %s\n", item.ID, truncate(item.Name, 40), views.DaysLeftLabel(item, now))
	}
}

func init() {
	dashCmd.Flags().BoolP("year", "Y", false, "Use the year to date instead of the month")
}
