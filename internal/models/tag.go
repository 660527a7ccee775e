package models

// Location is a room-level storage tag ("kitchen", "garage").
type Location struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Room string `gorm:"unique;not null" json:"room"`
}

// Spot is a within-room storage tag ("cabinet", "drawer").
type Spot struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Spot string `gorm:"unique;not null" json:"spot"`
}

// Direction pins an item inside a spot ("top", "behind").
type Direction struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Direction string `gorm:"unique;not null" json:"direction"`
}
