package db

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"homekeep/internal/models"
	"homekeep/internal/parser"
	"homekeep/internal/validate"
)

// AllRoomsID is the sentinel room filter that matches every room. No real
// tag row ever gets this id.
const AllRoomsID uint = 99999

// ItemDraft holds the data needed to create a new store item. Tag fields
// are labels from the registry; an empty label leaves the slot unassigned.
type ItemDraft struct {
	Name       string `validate:"required,min=1,max=40"`
	DateBought string `validate:"required,isodate"`
	DateExpiry string `validate:"required,isodate"`
	Cost       string `validate:"omitempty,cost"`
	Category   models.Category
	Room       string
	Spot       string
	Direction  string
}

// CreateItem validates the draft, resolves its tag labels and inserts the
// item as active and full, with the status-change date pinned to the
// purchase date.
func CreateItem(draft ItemDraft) (*models.StoreItem, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, asValidationError(err)
	}
	category := draft.Category
	if category == "" {
		category = models.CategoryFood
	}
	if !category.Valid() {
		return nil, &ValidationError{Field: "category", Reason: "unknown category"}
	}
	cost := draft.Cost
	if cost == "" {
		cost = "0"
	}

	ids, err := resolveTagLabels(draft.Room, draft.Spot, draft.Direction)
	if err != nil {
		return nil, err
	}

	item := models.StoreItem{
		Name:             draft.Name,
		DateBought:       draft.DateBought,
		DateExpiry:       draft.DateExpiry,
		DateStatusChange: draft.DateBought,
		Cost:             cost,
		Status:           models.StatusActive,
		Amount:           models.AmountFull,
		Category:         category,
		LocationID:       ids.room,
		SpotID:           ids.spot,
		DirectionID:      ids.direction,
	}

	if err := DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateTagsAndAmount re-resolves the tag labels (the registry may have
// changed since the item was created) and updates the gauge and location
// slots in place. Status is never touched here.
func UpdateTagsAndAmount(itemID uint, amount models.Amount, room, spot, direction string) error {
	if !amount.Valid() {
		return &ValidationError{Field: "amount", Reason: "unknown amount"}
	}

	ids, err := resolveTagLabels(room, spot, direction)
	if err != nil {
		return err
	}

	res := DB.Model(&models.StoreItem{}).Where("id = ?", itemID).Updates(map[string]interface{}{
		"amount":       amount,
		"location_id":  ids.room,
		"spot_id":      ids.spot,
		"direction_id": ids.direction,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "item", ID: itemID}
	}
	return nil
}

// GetItemByID retrieves one item with its tags resolved.
func GetItemByID(id uint) (*models.StoreItem, error) {
	var item models.StoreItem
	err := DB.Preload("Location").Preload("Spot").Preload("Direction").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "item", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListActive returns active items with tags resolved, optionally filtered
// to one room (AllRoomsID bypasses the filter). The ordering is a contract
// the view layer depends on for stable grouping: room ascending, then spot
// and direction descending, then newest purchase first.
func ListActive(roomID uint) ([]models.StoreItem, error) {
	q := DB.Where("status = ?", models.StatusActive).
		Order("location_id asc").
		Order("spot_id desc").
		Order("direction_id desc").
		Order("date_bought desc").
		Preload("Location").Preload("Spot").Preload("Direction")

	if roomID != AllRoomsID {
		q = q.Where("location_id = ?", roomID)
	}

	var items []models.StoreItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListNonActive returns the history set: everything that left the active
// state, grouped-friendly ordered by status then newest purchase first.
func ListNonActive() ([]models.StoreItem, error) {
	var items []models.StoreItem
	err := DB.Where("status <> ?", models.StatusActive).
		Order("status asc").
		Order("date_bought desc").
		Preload("Location").Preload("Spot").Preload("Direction").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteAllNonActive hard-deletes every non-active item. Irreversible;
// backs the "clear history" action.
func DeleteAllNonActive() error {
	return DB.Where("status <> ?", models.StatusActive).Delete(&models.StoreItem{}).Error
}

// Transition moves an item along the lifecycle edges: active to consumed,
// recycled or disposed, and any of those three back to active (undo). The
// undo resets nothing besides status; amount and tags stay as last set.
func Transition(itemID uint, to models.Status) error {
	return transitionAt(itemID, to, time.Now())
}

func transitionAt(itemID uint, to models.Status, now time.Time) error {
	item, err := GetItemByID(itemID)
	if err != nil {
		return err
	}
	if !legalTransition(item.Status, to) {
		return &ValidationError{
			Field:  "status",
			Reason: "cannot move from " + string(item.Status) + " to " + string(to),
		}
	}

	// Status and its change date move together, in one UPDATE.
	res := DB.Model(&models.StoreItem{}).Where("id = ?", itemID).Updates(map[string]interface{}{
		"status":             to,
		"date_status_change": parser.FormatISODate(now),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "item", ID: itemID}
	}
	return nil
}

func legalTransition(from, to models.Status) bool {
	switch from {
	case models.StatusActive:
		return to == models.StatusConsumed || to == models.StatusRecycled || to == models.StatusDisposed
	case models.StatusConsumed, models.StatusRecycled, models.StatusDisposed:
		return to == models.StatusActive
	}
	return false
}

// MarkBuyAgain puts the item's name on the shopping list. Fire-and-forget:
// no link between the store item and the list entry is kept.
func MarkBuyAgain(itemID uint) (*models.ShoppingItem, error) {
	item, err := GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	return AddShoppingItem(item.Name)
}

type tagIDs struct {
	room, spot, direction *uint
}

// resolveTagLabels looks up the three labels concurrently; they are
// independent reads with a single join point.
func resolveTagLabels(room, spot, direction string) (tagIDs, error) {
	var ids tagIDs
	g := new(errgroup.Group)

	resolve := func(vocab Vocabulary, label string, dst **uint) {
		g.Go(func() error {
			if label == "" {
				return nil
			}
			id, err := ResolveTag(vocab, label)
			if err != nil {
				return err
			}
			*dst = &id
			return nil
		})
	}
	resolve(VocabRoom, room, &ids.room)
	resolve(VocabSpot, spot, &ids.spot)
	resolve(VocabDirection, direction, &ids.direction)

	if err := g.Wait(); err != nil {
		return tagIDs{}, err
	}
	return ids, nil
}

// asValidationError flattens a validator error into the local taxonomy.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: strings.ToLower(fe.Field()), Reason: reasonFor(fe)}
	}
	return err
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "cannot be blank"
	case "max":
		return "exceeds max length"
	case "cost":
		return "invalid cost"
	case "isodate":
		return "invalid date, use yyyy-mm-dd"
	}
	return "invalid value"
}
