package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"homekeep/internal/db"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a backup of all data to a JSON file",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		dir, _ := cmd.Flags().GetString("dir")
		path, err := db.WriteBackupFile(dir)
		if err != nil {
			fmt.Printf("Backup failed: %v\n", err)
			return
		}
		fmt.Printf("💾 Backup written to %s\n", path)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Replace all data with the contents of a backup file",
	Long: `Restore wipes every table and reloads it from the backup as a single
transaction; if anything goes wrong the previous data is kept untouched.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		if !requireAccess() {
			return
		}

		f, err := os.Open(args[0])
		if err != nil {
			fmt.Printf("Restore failed: %v\n", err)
			return
		}
		defer f.Close()

		if err := db.RestoreBackup(f); err != nil {
			fmt.Printf("Restore failed: %v\n", err)
			return
		}
		fmt.Println("✅ Backup restored.")
	},
}

func init() {
	backupCmd.Flags().StringP("dir", "o", ".", "Directory to write the backup file into")
}
