package views

import (
	"testing"
	"time"

	"homekeep/internal/models"
)

var march = DateRange{Start: "2025-03-01", End: "2025-03-31"}

func TestDateRangeContains(t *testing.T) {
	if !march.Contains("2025-03-01") || !march.Contains("2025-03-31") {
		t.Error("Range bounds are inclusive")
	}
	if march.Contains("2025-02-28") || march.Contains("2025-04-01") {
		t.Error("Dates outside the range must not match")
	}
}

func TestComputeDashboardSpend(t *testing.T) {
	items := []models.StoreItem{
		{Name: "Milk", Status: models.StatusActive, Category: models.CategoryFood, DateBought: "2025-03-05", DateExpiry: "2025-12-01", Cost: "3.50"},
		{Name: "Soap", Status: models.StatusActive, Category: models.CategoryHygiene, DateBought: "2025-03-20", DateExpiry: "2025-12-01", Cost: "1,99"},
		{Name: "Rice", Status: models.StatusActive, Category: models.CategoryFood, DateBought: "2025-02-10", DateExpiry: "2025-12-01", Cost: "10.00"},
	}

	ref := time.Date(2025, 3, 25, 12, 0, 0, 0, time.UTC)
	snap := ComputeDashboard(items, ref, march)

	// 3.50 + 1.99; the February purchase is out of range. Comma decimals
	// parse the same as dots.
	if snap.TotalSpent < 5.48 || snap.TotalSpent > 5.50 {
		t.Errorf("Expected total spent 5.49, got %v", snap.TotalSpent)
	}
}

func TestComputeDashboardWastage(t *testing.T) {
	items := []models.StoreItem{
		{Name: "Jar", Status: models.StatusRecycled, Amount: models.AmountEmpty, DateStatusChange: "2025-03-10", DateExpiry: "2025-12-01"},
		{Name: "Jam", Status: models.StatusRecycled, Amount: models.AmountHalf, DateStatusChange: "2025-03-11", DateExpiry: "2025-12-01"},
		{Name: "Foil", Status: models.StatusDisposed, Amount: models.AmountLow, DateStatusChange: "2025-03-12", DateExpiry: "2025-12-01"},
		{Name: "Old jar", Status: models.StatusRecycled, Amount: models.AmountHalf, DateStatusChange: "2025-01-05", DateExpiry: "2025-12-01"},
	}

	ref := time.Date(2025, 3, 25, 12, 0, 0, 0, time.UTC)
	snap := ComputeDashboard(items, ref, march)

	if snap.RecycledCount != 2 {
		t.Errorf("Expected 2 recycled in range, got %d", snap.RecycledCount)
	}
	if snap.RecycledWastageCount != 1 {
		t.Errorf("Expected 1 recycled with leftovers, got %d", snap.RecycledWastageCount)
	}
	if snap.DisposedCount != 1 {
		t.Errorf("Expected 1 disposed in range, got %d", snap.DisposedCount)
	}
	if snap.DisposedWastageCount != 1 {
		t.Errorf("Expected 1 disposed with leftovers, got %d", snap.DisposedWastageCount)
	}
}

func TestComputeDashboardExpiryBuckets(t *testing.T) {
	ref := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	food := func(name, expiry string) models.StoreItem {
		return models.StoreItem{Name: name, Status: models.StatusActive, Category: models.CategoryFood, DateBought: "2025-03-01", DateExpiry: expiry}
	}

	items := []models.StoreItem{
		food("Yesterday", "2025-03-14"),
		food("Today", "2025-03-15"),
		food("Next week", "2025-03-22"),
		food("Next month", "2025-04-20"),
	}

	snap := ComputeDashboard(items, ref, march)

	if len(snap.ExpiredFood) != 1 || snap.ExpiredFood[0].Name != "Yesterday" {
		t.Errorf("Expected only Yesterday expired, got %v", names(snap.ExpiredFood))
	}
	// Day zero and day seven are both still "expiring", not expired.
	want := []string{"Today", "Next week"}
	got := names(snap.ExpiringWithinWeek)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Expected expiring %v, got %v", want, got)
	}
}

func TestComputeDashboardReplaceSoon(t *testing.T) {
	ref := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	supply := func(name, expiry string) models.StoreItem {
		return models.StoreItem{Name: name, Status: models.StatusActive, Category: models.CategorySupplies, DateBought: "2025-03-01", DateExpiry: expiry}
	}

	items := []models.StoreItem{
		supply("Due today", "2025-03-15"),
		supply("Tomorrow", "2025-03-16"),
		supply("In 30 days", "2025-04-14"),
		supply("In 31 days", "2025-04-15"),
	}

	snap := ComputeDashboard(items, ref, march)

	// The replace window is exclusive at zero and inclusive at thirty.
	want := []string{"Tomorrow", "In 30 days"}
	got := names(snap.ReplaceSoon)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Expected replace-soon %v, got %v", want, got)
	}
	if len(snap.ExpiringWithinWeek) != 0 || len(snap.ExpiredFood) != 0 {
		t.Error("Non-food items must not land in the food buckets")
	}
}

func TestComputeDashboardSkipsNonActiveBuckets(t *testing.T) {
	ref := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	items := []models.StoreItem{
		{Name: "Gone", Status: models.StatusConsumed, Category: models.CategoryFood, DateBought: "2025-03-01", DateStatusChange: "2025-03-10", DateExpiry: "2025-03-10"},
	}

	snap := ComputeDashboard(items, ref, march)
	if len(snap.ExpiredFood) != 0 || len(snap.ExpiringWithinWeek) != 0 {
		t.Error("History items must never raise expiry alerts")
	}
}

func TestDaysLeftLabel(t *testing.T) {
	ref := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		category models.Category
		expiry   string
		want     string
	}{
		{models.CategoryFood, "2025-03-14", "Expired"},
		{models.CategoryFood, "2025-03-15", "Expires today"},
		{models.CategoryFood, "2025-03-16", "Expires in: 1 day"},
		{models.CategoryFood, "2025-03-20", "Expires in: 5 days"},
		{models.CategorySupplies, "2025-03-14", "Time to replace"},
		{models.CategorySupplies, "2025-03-15", "Replace today"},
		{models.CategorySupplies, "2025-03-22", "To replace in: 7 days"},
	}

	for _, tc := range cases {
		item := models.StoreItem{Category: tc.category, DateExpiry: tc.expiry}
		if got := DaysLeftLabel(item, ref); got != tc.want {
			t.Errorf("DaysLeftLabel(%s, %s) = %q, want %q", tc.category, tc.expiry, got, tc.want)
		}
	}
}

func names(items []models.StoreItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}
