package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
	"homekeep/internal/models"
	"homekeep/internal/parser"
)

func categoryFrom(s string) models.Category {
	return models.Category(strings.ToLower(strings.TrimSpace(s)))
}

var addCmd = &cobra.Command{
	Use:   "add [item name]",
	Short: "Add an item to the inventory",
	Long: `Add a household item with its cost, category, dates and storage tags.

Tags must already exist in the registry ('homekeep tags add' creates them);
new items start active and full.

Example:
  homekeep add "Dark chocolate" --cost 3.50 --room kitchen --spot cabinet --direction top`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}

		today := time.Now()
		bought, _ := cmd.Flags().GetString("bought")
		if bought == "" {
			bought = parser.FormatISODate(today)
		}
		expiry, _ := cmd.Flags().GetString("expiry")
		if expiry == "" {
			// Same default as the intake form: three months out.
			expiry = parser.FormatISODate(today.AddDate(0, 3, 0))
		}

		cost, _ := cmd.Flags().GetString("cost")
		category, _ := cmd.Flags().GetString("category")
		room, _ := cmd.Flags().GetString("room")
		spot, _ := cmd.Flags().GetString("spot")
		direction, _ := cmd.Flags().GetString("direction")

		draft := db.ItemDraft{
			Name:       strings.Join(args, " "),
			DateBought: bought,
			DateExpiry: expiry,
			Cost:       cost,
			Category:   categoryFrom(category),
			Room:       room,
			Spot:       spot,
			Direction:  direction,
		}

		item, err := db.CreateItem(draft)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added item #%d: %s\n", item.ID, item.Name)
		fmt.Printf("  Category: %s\n", item.Category)
		fmt.Printf("  Bought: %s  Expiry: %s\n", item.DateBought, item.DateExpiry)
		if item.Cost != "0" {
			fmt.Printf("  Cost: %s\n", item.Cost)
		}
		if loc := locationLine(item.RoomLabel(), item.SpotLabel(), item.DirectionLabel()); loc != "" {
			fmt.Printf("  Stored: %s\n", loc)
		}
	},
}

func locationLine(room, spot, direction string) string {
	var parts []string
	for _, p := range []string{room, spot, direction} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " / ")
}

func init() {
	addCmd.Flags().StringP("cost", "c", "", "Cost, up to two decimal places")
	addCmd.Flags().StringP("category", "k", "food", "Category: food, hygiene, supplies, miscellaneous")
	addCmd.Flags().StringP("bought", "b", "", "Purchase date (yyyy-mm-dd, default today)")
	addCmd.Flags().StringP("expiry", "e", "", "Expiry/replace-by date (yyyy-mm-dd, default +3 months)")
	addCmd.Flags().StringP("room", "r", "", "Room tag")
	addCmd.Flags().StringP("spot", "s", "", "Spot tag")
	addCmd.Flags().StringP("direction", "d", "", "Direction tag")
}
