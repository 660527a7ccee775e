package db

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"homekeep/internal/models"
)

// BackupVersion is bumped whenever the backup format changes.
const BackupVersion = "1.0"

// BackupData is the on-disk backup document.
type BackupData struct {
	Timestamp string        `json:"timestamp"`
	Version   string        `json:"version"`
	Data      *BackupTables `json:"data"`
}

// BackupTables carries one slice per table.
type BackupTables struct {
	Locations    []models.Location     `json:"locations"`
	Spots        []models.Spot         `json:"spots"`
	Directions   []models.Direction    `json:"directions"`
	StoreItems   []models.StoreItem    `json:"storeItems"`
	ShoppingList []models.ShoppingItem `json:"shoppingList"`
}

// CreateBackup writes a full snapshot of all five tables as indented JSON.
func CreateBackup(w io.Writer) error {
	var data BackupTables
	if err := DB.Find(&data.Locations).Error; err != nil {
		return fmt.Errorf("failed to read locations: %w", err)
	}
	if err := DB.Find(&data.Spots).Error; err != nil {
		return fmt.Errorf("failed to read spots: %w", err)
	}
	if err := DB.Find(&data.Directions).Error; err != nil {
		return fmt.Errorf("failed to read directions: %w", err)
	}
	if err := DB.Find(&data.StoreItems).Error; err != nil {
		return fmt.Errorf("failed to read store items: %w", err)
	}
	if err := DB.Find(&data.ShoppingList).Error; err != nil {
		return fmt.Errorf("failed to read shopping list: %w", err)
	}

	backup := BackupData{
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   BackupVersion,
		Data:      &data,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(backup)
}

// WriteBackupFile creates a timestamped backup file in dir and returns its
// path.
func WriteBackupFile(dir string) (string, error) {
	name := fmt.Sprintf("homekeep-backup-%s.json", time.Now().Format("2006-01-02-150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := CreateBackup(f); err != nil {
		return "", err
	}
	return path, nil
}

// RestoreBackup wipes and reloads all five tables from the backup document
// as one transaction. A failure at any point rolls everything back, leaving
// the prior state intact.
func RestoreBackup(r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("backup file unreadable: %w", err)
	}
	if backup.Version == "" || backup.Data == nil {
		return fmt.Errorf("invalid backup format")
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		// Clear existing data, dependents first.
		if err := tx.Where("1 = 1").Delete(&models.ShoppingItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.StoreItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Direction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Spot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Location{}).Error; err != nil {
			return err
		}

		// Reload in dependency order so the item foreign keys resolve.
		if len(backup.Data.Locations) > 0 {
			if err := tx.Create(&backup.Data.Locations).Error; err != nil {
				return err
			}
		}
		if len(backup.Data.Spots) > 0 {
			if err := tx.Create(&backup.Data.Spots).Error; err != nil {
				return err
			}
		}
		if len(backup.Data.Directions) > 0 {
			if err := tx.Create(&backup.Data.Directions).Error; err != nil {
				return err
			}
		}
		if len(backup.Data.StoreItems) > 0 {
			if err := tx.Omit("Location", "Spot", "Direction").Create(&backup.Data.StoreItems).Error; err != nil {
				return err
			}
		}
		if len(backup.Data.ShoppingList) > 0 {
			if err := tx.Create(&backup.Data.ShoppingList).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
