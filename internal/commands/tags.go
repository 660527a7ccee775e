package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage the room, spot and direction vocabularies",
}

var tagsListCmd = &cobra.Command{
	Use:     "ls [vocabulary]",
	Aliases: []string{"list"},
	Short:   "List tags, all vocabularies or one",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		vocabularies := []db.Vocabulary{db.VocabRoom, db.VocabSpot, db.VocabDirection}
		if len(args) == 1 {
			vocab, err := db.ParseVocabulary(args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			vocabularies = []db.Vocabulary{vocab}
		}

		for _, vocab := range vocabularies {
			tags, err := db.ListTags(vocab)
			if err != nil {
				fmt.Printf("Error fetching %ss: %v\n", vocab, err)
				return
			}
			fmt.Printf("\n%sS\n", strings.ToUpper(string(vocab)))
			for _, tag := range tags {
				fmt.Printf("  #%-4d %s\n", tag.ID, tag.Label)
			}
		}
	},
}

var tagsAddCmd = &cobra.Command{
	Use:   "add [vocabulary] [label]",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}
		vocab, err := db.ParseVocabulary(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		tag, err := db.CreateTag(vocab, args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Created %s #%d: %s\n", vocab, tag.ID, tag.Label)
	},
}

var tagsRemoveCmd = &cobra.Command{
	Use:     "rm [vocabulary] [id]",
	Aliases: []string{"remove"},
	Short:   "Delete a tag not referenced by any item",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}
		vocab, err := db.ParseVocabulary(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		id, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid id '%s'\n", args[1])
			return
		}
		if err := db.DeleteTag(vocab, uint(id)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted %s #%d\n", vocab, id)
	},
}

func init() {
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsAddCmd)
	tagsCmd.AddCommand(tagsRemoveCmd)
}
