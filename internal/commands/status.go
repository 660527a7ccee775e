package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
	"homekeep/internal/models"
)

func transitionCommand(use, short, emoji string, to models.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [item-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initDB()
			if !requireAccess() {
				return
			}
			itemID, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				fmt.Printf("Error: invalid item ID '%s'\n", args[0])
				return
			}

			if err := db.Transition(uint(itemID), to); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}

			item, err := db.GetItemByID(uint(itemID))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("%s Item #%d (%s) is now %s\n", emoji, item.ID, item.Name, item.Status)
		},
	}
}

var (
	consumeCmd = transitionCommand("consume", "Mark an item as consumed", "🍽️ ", models.StatusConsumed)
	recycleCmd = transitionCommand("recycle", "Mark an item as recycled", "♻️ ", models.StatusRecycled)
	disposeCmd = transitionCommand("dispose", "Mark an item as disposed", "🗑️ ", models.StatusDisposed)
	undoCmd    = transitionCommand("undo", "Move an item from history back to active", "↩️ ", models.StatusActive)
)

var buyCmd = &cobra.Command{
	Use:   "buy [item-id]",
	Short: "Put an item's name on the shopping list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}
		itemID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid item ID '%s'\n", args[0])
			return
		}

		entry, err := db.MarkBuyAgain(uint(itemID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🛒 Added %q to the shopping list\n", entry.Name)
	},
}

var moveCmd = &cobra.Command{
	Use:   "move [item-id]",
	Short: "Update an item's storage tags and remaining amount",
	Long: `Update where an item is stored and how much is left. Status is not
touched; use consume/recycle/dispose for that.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}
		itemID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid item ID '%s'\n", args[0])
			return
		}

		item, err := db.GetItemByID(uint(itemID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Flags override; anything not set keeps its current value.
		amount := item.Amount
		if v, _ := cmd.Flags().GetString("amount"); v != "" {
			amount = models.Amount(v)
		}
		room := item.RoomLabel()
		if v, _ := cmd.Flags().GetString("room"); v != "" {
			room = db.NormalizeLabel(v)
		}
		spot := item.SpotLabel()
		if v, _ := cmd.Flags().GetString("spot"); v != "" {
			spot = db.NormalizeLabel(v)
		}
		direction := item.DirectionLabel()
		if v, _ := cmd.Flags().GetString("direction"); v != "" {
			direction = db.NormalizeLabel(v)
		}

		if err := db.UpdateTagsAndAmount(uint(itemID), amount, room, spot, direction); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📦 Updated item #%d: amount %s, stored %s\n",
			itemID, amount, locationLine(room, spot, direction))
	},
}

func init() {
	moveCmd.Flags().StringP("amount", "a", "", "Remaining amount: empty, low, half, full")
	moveCmd.Flags().StringP("room", "r", "", "Room tag")
	moveCmd.Flags().StringP("spot", "s", "", "Spot tag")
	moveCmd.Flags().StringP("direction", "d", "", "Direction tag")
}
