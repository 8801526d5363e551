package models

import "gorm.io/gorm"

// RecipeIngredient carries quantity and unit for display only; the
// suggestion matcher checks presence by NameNorm, not amounts.
type RecipeIngredient struct {
	gorm.Model

	RecipeID uint    `gorm:"not null;index"`
	Name     string  `gorm:"not null"`
	NameNorm string  `gorm:"not null;index"`
	Quantity float64 `gorm:"not null"`
	Unit     string  `gorm:"not null"`

	// Relationships
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
