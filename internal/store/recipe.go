package store

import (
	"github.com/wasteless-dev/wasteless/internal/models"
	"github.com/wasteless-dev/wasteless/internal/normalize"
	"gorm.io/gorm"
)

type RecipeStore struct {
	db *gorm.DB
}

func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

func (s *RecipeStore) CreateRecipe(recipe *models.Recipe) error {
	return s.db.Create(recipe).Error
}

// AddIngredients inserts the batch in one call, deriving each
// normalized name key.
func (s *RecipeStore) AddIngredients(ingredients []models.RecipeIngredient) error {
	if len(ingredients) == 0 {
		return nil
	}

	for i := range ingredients {
		ingredients[i].NameNorm = normalize.Name(ingredients[i].Name)
	}

	return s.db.Create(&ingredients).Error
}

func (s *RecipeStore) ListByUser(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe

	if err := s.db.Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (s *RecipeStore) IngredientsForRecipe(recipeID uint) ([]models.RecipeIngredient, error) {
	var ingredients []models.RecipeIngredient

	if err := s.db.Where("recipe_id = ?", recipeID).Find(&ingredients).Error; err != nil {
		return nil, err
	}

	return ingredients, nil
}
