package models

// Status is the lifecycle disposition of a store item.
type Status string

const (
	StatusActive   Status = "active"
	StatusConsumed Status = "consumed"
	StatusDisposed Status = "disposed"
	StatusDeleted  Status = "deleted" // present in the schema, no operation sets it
	StatusRecycled Status = "recycled"
)

// Amount is a coarse remaining-quantity gauge, distinct from Status.
type Amount string

const (
	AmountEmpty Amount = "empty"
	AmountLow   Amount = "low"
	AmountHalf  Amount = "half"
	AmountFull  Amount = "full"
)

// Valid reports whether a is one of the four known gauge values.
func (a Amount) Valid() bool {
	switch a {
	case AmountEmpty, AmountLow, AmountHalf, AmountFull:
		return true
	}
	return false
}

// Category decides whether DateExpiry means "expires" (food) or "replace by".
type Category string

const (
	CategoryFood          Category = "food"
	CategoryHygiene       Category = "hygiene"
	CategorySupplies      Category = "supplies"
	CategoryMiscellaneous Category = "miscellaneous"
)

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryHygiene, CategorySupplies, CategoryMiscellaneous:
		return true
	}
	return false
}

// StoreItem is a tracked household item. Dates are ISO yyyy-mm-dd strings,
// cost is a decimal string with up to two decimal places. The three location
// foreign keys are nulled when the referenced tag is removed.
type StoreItem struct {
	ID               uint     `gorm:"primarykey" json:"id"`
	Name             string   `gorm:"not null" json:"name"`
	DateBought       string   `gorm:"not null" json:"dateBought"`
	DateExpiry       string   `gorm:"not null" json:"dateExpiry"`
	DateStatusChange string   `gorm:"not null" json:"dateStatusChange"`
	Cost             string   `gorm:"not null;default:0" json:"cost"`
	Status           Status   `gorm:"default:active" json:"status"`
	Amount           Amount   `gorm:"default:full" json:"amount"`
	Category         Category `gorm:"default:food" json:"category"`

	LocationID  *uint `json:"locationId"`
	SpotID      *uint `json:"spotId"`
	DirectionID *uint `json:"directionId"`

	// Relationships
	Location  *Location  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location,omitempty"`
	Spot      *Spot      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"spot,omitempty"`
	Direction *Direction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"direction,omitempty"`
}

// TableName keeps the table compatible with existing backups.
func (StoreItem) TableName() string { return "store_items" }

// RoomLabel returns the resolved room label, or "" when unassigned.
func (s StoreItem) RoomLabel() string {
	if s.Location != nil {
		return s.Location.Room
	}
	return ""
}

// SpotLabel returns the resolved spot label, or "" when unassigned.
func (s StoreItem) SpotLabel() string {
	if s.Spot != nil {
		return s.Spot.Spot
	}
	return ""
}

// DirectionLabel returns the resolved direction label, or "" when unassigned.
func (s StoreItem) DirectionLabel() string {
	if s.Direction != nil {
		return s.Direction.Direction
	}
	return ""
}
