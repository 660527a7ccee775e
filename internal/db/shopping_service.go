package db

import (
	"homekeep/internal/models"
	"homekeep/internal/validate"
)

type shoppingDraft struct {
	Name string `validate:"required,min=1,max=40"`
}

// AddShoppingItem appends a new, not-done entry to the shopping list.
func AddShoppingItem(name string) (*models.ShoppingItem, error) {
	if err := validate.Struct(shoppingDraft{Name: name}); err != nil {
		return nil, asValidationError(err)
	}

	item := models.ShoppingItem{Name: name}
	if err := DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListShoppingItems returns the list with open entries first, newest first
// within each half.
func ListShoppingItems() ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	err := DB.Order("done asc").Order("id desc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SetShoppingItemDone flips the done flag.
func SetShoppingItemDone(id uint, done bool) error {
	res := DB.Model(&models.ShoppingItem{}).Where("id = ?", id).Update("done", done)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "shopping item", ID: id}
	}
	return nil
}

// RenameShoppingItem replaces the entry's name.
func RenameShoppingItem(id uint, name string) error {
	if err := validate.Struct(shoppingDraft{Name: name}); err != nil {
		return asValidationError(err)
	}

	res := DB.Model(&models.ShoppingItem{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "shopping item", ID: id}
	}
	return nil
}

// DeleteShoppingItem removes one entry.
func DeleteShoppingItem(id uint) error {
	res := DB.Delete(&models.ShoppingItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "shopping item", ID: id}
	}
	return nil
}
