// Package views turns item snapshots into the grouped and aggregated
// projections the UI renders. Everything here is pure: items and the
// reference time come in as arguments, no clock or database is touched.
package views

import (
	"sort"
	"strings"

	"homekeep/internal/models"
)

// UnassignedLabel is the fallback group for items without a room (or,
// in history, without a status). It always sorts last.
const UnassignedLabel = "Unassigned"

// Group is one section of a grouped projection.
type Group struct {
	Label string
	Items []models.StoreItem
}

// GroupInventoryByRoom filters items by a case-insensitive name search and
// groups them by room label. Groups come back alphabetically with
// "Unassigned" forced last; within a group the input order is kept, so the
// store's ordering contract carries through.
func GroupInventoryByRoom(items []models.StoreItem, searchQuery string) []Group {
	return groupBy(items, searchQuery, func(item models.StoreItem) string {
		if room := item.RoomLabel(); room != "" {
			return room
		}
		return UnassignedLabel
	})
}

// GroupHistoryByStatus is the history-screen counterpart: same filter and
// ordering rules, keyed on lifecycle status.
func GroupHistoryByStatus(items []models.StoreItem, searchQuery string) []Group {
	return groupBy(items, searchQuery, func(item models.StoreItem) string {
		if item.Status == "" {
			return UnassignedLabel
		}
		return string(item.Status)
	})
}

func groupBy(items []models.StoreItem, searchQuery string, key func(models.StoreItem) string) []Group {
	query := strings.ToLower(searchQuery)

	index := make(map[string]int)
	var groups []Group
	for _, item := range items {
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Label: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].Label == UnassignedLabel {
			return false
		}
		if groups[b].Label == UnassignedLabel {
			return true
		}
		return groups[a].Label < groups[b].Label
	})
	return groups
}
