package models

import "gorm.io/gorm"

type Recipe struct {
	gorm.Model

	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string

	// Relationships
	User        User               `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
