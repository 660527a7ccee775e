package models

// ShoppingItem is a shopping list entry. Entries are created manually or by
// the buy-again action on a store item; no link back to the item is kept.
type ShoppingItem struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Done bool   `gorm:"default:false" json:"done"`
}

func (ShoppingItem) TableName() string { return "shopping_list" }
