package db

import (
	"homekeep/internal/models"
)

// Starter vocabularies so the intake form has something to offer on a
// fresh install. Labels are already in normalized form.
var seedRooms = []models.Location{
	{Room: "kitchen"},
	{Room: "pantry"},
	{Room: "bathroom"},
	{Room: "store_room"},
	{Room: "laundry"},
	{Room: "balcony"},
	{Room: "garage"},
	{Room: "master_bedroom"},
	{Room: "study_room"},
	{Room: "guest_room"},
	{Room: "children_room"},
}

var seedSpots = []models.Spot{
	{Spot: "cabinet"},
	{Spot: "drawer"},
	{Spot: "shelf"},
	{Spot: "counter"},
	{Spot: "fridge"},
	{Spot: "freezer"},
	{Spot: "pantry"},
	{Spot: "closet"},
	{Spot: "box"},
	{Spot: "basket"},
	{Spot: "container"},
	{Spot: "rack"},
	{Spot: "table"},
	{Spot: "door"},
	{Spot: "wall"},
	{Spot: "corner"},
}

var seedDirections = []models.Direction{
	{Direction: "top"},
	{Direction: "bottom"},
	{Direction: "left"},
	{Direction: "right"},
	{Direction: "front"},
	{Direction: "behind"},
	{Direction: "middle"},
	{Direction: "inside"},
	{Direction: "outside"},
	{Direction: "beside"},
	{Direction: "1st"},
	{Direction: "2nd"},
	{Direction: "3rd"},
	{Direction: "on"},
	{Direction: "against"},
}

// Seed fills each empty vocabulary table with its starter set. Tables that
// already have rows are left alone.
func Seed() error {
	var count int64
	if err := DB.Model(&models.Location{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		rooms := make([]models.Location, len(seedRooms))
		copy(rooms, seedRooms)
		if err := DB.Create(&rooms).Error; err != nil {
			return err
		}
	}

	if err := DB.Model(&models.Spot{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		spots := make([]models.Spot, len(seedSpots))
		copy(spots, seedSpots)
		if err := DB.Create(&spots).Error; err != nil {
			return err
		}
	}

	if err := DB.Model(&models.Direction{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		directions := make([]models.Direction, len(seedDirections))
		copy(directions, seedDirections)
		if err := DB.Create(&directions).Error; err != nil {
			return err
		}
	}

	return nil
}
