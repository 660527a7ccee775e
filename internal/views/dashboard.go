package views

import (
	"time"

	"homekeep/internal/models"
	"homekeep/internal/parser"
)

// DateRange is an inclusive ISO-date window.
type DateRange struct {
	Start string
	End   string
}

// Contains reports whether the ISO date falls inside the window. ISO dates
// compare correctly as strings.
func (r DateRange) Contains(isoDate string) bool {
	return isoDate >= r.Start && isoDate <= r.End
}

// DashboardSnapshot is everything the home screen shows for one range.
type DashboardSnapshot struct {
	TotalSpent float64

	RecycledCount        int
	DisposedCount        int
	RecycledWastageCount int // recycled with leftover quantity
	DisposedWastageCount int // disposed with leftover quantity

	ExpiringWithinWeek []models.StoreItem
	ExpiredFood        []models.StoreItem
	ReplaceSoon        []models.StoreItem
}

// ComputeDashboard aggregates one pass over the full item set.
//
// Spend and the recycled/disposed counters look at the date range; the
// expiry and replace buckets look at the reference date and consider only
// active items, so anything already in history never raises an alert.
// Day zero counts as expiring today, not yet expired.
func ComputeDashboard(items []models.StoreItem, ref time.Time, dr DateRange) DashboardSnapshot {
	var snap DashboardSnapshot

	for _, item := range items {
		if dr.Contains(item.DateBought) {
			snap.TotalSpent += parser.ParseCost(item.Cost)
		}

		if dr.Contains(item.DateStatusChange) {
			switch item.Status {
			case models.StatusRecycled:
				snap.RecycledCount++
				if item.Amount != models.AmountEmpty {
					snap.RecycledWastageCount++
				}
			case models.StatusDisposed:
				snap.DisposedCount++
				if item.Amount != models.AmountEmpty {
					snap.DisposedWastageCount++
				}
			}
		}

		if item.Status != models.StatusActive {
			continue
		}
		days := parser.DaysUntil(item.DateExpiry, ref)
		if item.Category == models.CategoryFood {
			switch {
			case days < 0:
				snap.ExpiredFood = append(snap.ExpiredFood, item)
			case days <= 7:
				snap.ExpiringWithinWeek = append(snap.ExpiringWithinWeek, item)
			}
		} else if days > 0 && days <= 30 {
			snap.ReplaceSoon = append(snap.ReplaceSoon, item)
		}
	}

	return snap
}
