package services

import (
	"github.com/wasteless-dev/wasteless/internal/models"
)

type RecipeStore interface {
	CreateRecipe(recipe *models.Recipe) error
	AddIngredients(ingredients []models.RecipeIngredient) error
	ListByUser(userID uint) ([]models.Recipe, error)
	IngredientsForRecipe(recipeID uint) ([]models.RecipeIngredient, error)
}

// RecipeService persists recipes and matches them against the current
// stock. It reads stock through the same store access the inventory
// logic uses.
type RecipeService struct {
	recipes RecipeStore
	food    FoodStore
}

func NewRecipeService(recipes RecipeStore, food FoodStore) *RecipeService {
	return &RecipeService{recipes: recipes, food: food}
}

type IngredientInput struct {
	Name     string
	Quantity float64
	Unit     string
}

type RecipeInput struct {
	Title       string
	Description string
	Ingredients []IngredientInput
}

// Save inserts the recipe row, then its ingredients in one batch.
// The two inserts are independent calls with no transactional
// wrapping.
func (s *RecipeService) Save(userID uint, input RecipeInput) (*models.Recipe, []models.RecipeIngredient, error) {
	recipe := &models.Recipe{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := s.recipes.CreateRecipe(recipe); err != nil || recipe.ID == 0 {
		return nil, nil, ErrCreationFailed
	}

	ingredients := make([]models.RecipeIngredient, 0, len(input.Ingredients))

	for _, ing := range input.Ingredients {
		ingredients = append(ingredients, models.RecipeIngredient{
			RecipeID: recipe.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	if err := s.recipes.AddIngredients(ingredients); err != nil {
		return nil, nil, ErrCreationFailed
	}

	return recipe, ingredients, nil
}

// Suggestion is either fully makeable (Ingredients set) or partially
// makeable (MissingIngredients set); the two fields are mutually
// exclusive on the wire.
type Suggestion struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Ingredients        []string `json:"ingredients,omitempty"`
	MissingIngredients []string `json:"missing_ingredients,omitempty"`
}

// Suggestions matches every recipe of the user against the stock by
// normalized-name presence. Quantities are ignored; a recipe with no
// ingredients is skipped entirely.
func (s *RecipeService) Suggestions(userID uint) ([]Suggestion, error) {
	stockEntries, err := s.food.ListByUser(userID)

	if err != nil {
		return nil, err
	}

	inStock := make(map[string]struct{}, len(stockEntries))

	for _, entry := range stockEntries {
		inStock[entry.NameNorm] = struct{}{}
	}

	recipes, err := s.recipes.ListByUser(userID)

	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(recipes))

	for _, recipe := range recipes {
		ingredients, err := s.recipes.IngredientsForRecipe(recipe.ID)

		if err != nil {
			return nil, err
		}

		if len(ingredients) == 0 {
			continue
		}

		var missing []string

		for _, ing := range ingredients {
			if _, ok := inStock[ing.NameNorm]; !ok {
				missing = append(missing, ing.Name)
			}
		}

		if len(missing) == 0 {
			names := make([]string, 0, len(ingredients))

			for _, ing := range ingredients {
				names = append(names, ing.Name)
			}

			suggestions = append(suggestions, Suggestion{
				Title:       recipe.Title,
				Description: recipe.Description,
				Ingredients: names,
			})

			continue
		}

		suggestions = append(suggestions, Suggestion{
			Title:              recipe.Title,
			Description:        recipe.Description,
			MissingIngredients: missing,
		})
	}

	return suggestions, nil
}
