package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Manage the shopping list",
}

var shopAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an entry to the shopping list",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}
		entry, err := db.AddShoppingItem(strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🛒 Added #%d: %s\n", entry.ID, entry.Name)
	},
}

var shopListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "Show the shopping list",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		entries, err := db.ListShoppingItems()
		if err != nil {
			fmt.Printf("Error fetching shopping list: %v\n", err)
			return
		}
		if len(entries) == 0 {
			fmt.Println("Shopping list is empty.")
			return
		}
		for _, entry := range entries {
			mark := "[ ]"
			if entry.Done {
				mark = "[x]"
			}
			fmt.Printf("%s #%-4d %s\n", mark, entry.ID, entry.Name)
		}
	},
}

var shopDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Tick off a shopping list entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runShopToggle(args[0], true)
	},
}

var shopUndoneCmd = &cobra.Command{
	Use:   "undone [id]",
	Short: "Untick a shopping list entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runShopToggle(args[0], false)
	},
}

func runShopToggle(rawID string, done bool) {
	initDB()
	if !requireAccess() {
		return
	}
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		fmt.Printf("Error: invalid id '%s'\n", rawID)
		return
	}
	if err := db.SetShoppingItemDone(uint(id), done); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if done {
		fmt.Printf("✅ Ticked off #%d\n", id)
	} else {
		fmt.Printf("↩️  Unticked #%d\n", id)
	}
}

var shopRenameCmd = &cobra.Command{
	Use:   "rename [id] [name]",
	Short: "Rename a shopping list entry",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid id '%s'\n", args[0])
			return
		}
		name := strings.Join(args[1:], " ")
		if err := db.RenameShoppingItem(uint(id), name); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✏️  Renamed #%d to %q\n", id, name)
	},
}

var shopRemoveCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"remove"},
	Short:   "Delete a shopping list entry",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid id '%s'\n", args[0])
			return
		}
		if err := db.DeleteShoppingItem(uint(id)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Removed #%d\n", id)
	},
}

func init() {
	shopCmd.AddCommand(shopAddCmd)
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopDoneCmd)
	shopCmd.AddCommand(shopUndoneCmd)
	shopCmd.AddCommand(shopRenameCmd)
	shopCmd.AddCommand(shopRemoveCmd)
}
