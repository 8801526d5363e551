package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodEntry is one row of a user's stock. Entries are identified by
// (user, normalized name, unit, expiration date); adding the same
// identity again merges quantities instead of inserting a new row.
type FoodEntry struct {
	gorm.Model

	UserID         uint      `gorm:"not null;index"`
	Name           string    `gorm:"not null"`
	NameNorm       string    `gorm:"not null;index"`
	Quantity       float64   `gorm:"not null"`
	Unit           string    `gorm:"not null"`
	ExpirationDate time.Time `gorm:"type:date;not null"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (FoodEntry) TableName() string {
	return "food_stock"
}
