package views

import (
	"fmt"
	"time"

	"homekeep/internal/models"
	"homekeep/internal/parser"
)

// DaysLeftLabel is the per-row expiry caption. Food expires; everything
// else gets replaced. Day zero is the last usable day, not yet expired.
func DaysLeftLabel(item models.StoreItem, ref time.Time) string {
	days := parser.DaysUntil(item.DateExpiry, ref)
	food := item.Category == models.CategoryFood

	switch {
	case food && days < 0:
		return "Expired"
	case !food && days < 0:
		return "Time to replace"
	case food && days == 0:
		return "Expires today"
	case !food && days == 0:
		return "Replace today"
	case food:
		return fmt.Sprintf("Expires in: %s", dayCount(days))
	default:
		return fmt.Sprintf("To replace in: %s", dayCount(days))
	}
}

func dayCount(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
