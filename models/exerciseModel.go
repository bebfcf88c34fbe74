package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeightCategories and CardioCategories together form the fixed set of
// workout categories. An exercise's category decides which workout type
// it belongs to.
var (
	WeightCategories = []string{"Legs", "Chest", "Back", "Shoulders", "Arms", "Core"}
	CardioCategories = []string{"Running", "Cycling", "Swimming", "Rowing", "Elliptical"}
)

func IsValidCategory(category string) bool {
	for _, c := range WeightCategories {
		if c == category {
			return true
		}
	}
	for _, c := range CardioCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Exercise struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	Name         string             `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Category     string             `json:"category" bson:"category" validate:"required,oneof=Legs Chest Back Shoulders Arms Core Running Cycling Swimming Rowing Elliptical"`
	IsBodyweight bool               `json:"isBodyweight" bson:"isBodyweight"`
	IsDefault    bool               `json:"isDefault" bson:"isDefault"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// CatalogEntry is one exercise as exposed by the catalog listings.
type CatalogEntry struct {
	Name         string `json:"name" bson:"name"`
	IsBodyweight bool   `json:"isBodyweight" bson:"isBodyweight"`
}
