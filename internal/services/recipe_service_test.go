package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasteless-dev/wasteless/internal/models"
	"github.com/wasteless-dev/wasteless/internal/normalize"
)

type fakeRecipeStore struct {
	recipes     []models.Recipe
	ingredients map[uint][]models.RecipeIngredient
	nextID      uint
	failCreate  bool
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{ingredients: make(map[uint][]models.RecipeIngredient)}
}

func (f *fakeRecipeStore) CreateRecipe(recipe *models.Recipe) error {
	if f.failCreate {
		return fmt.Errorf("insert failed")
	}
	f.nextID++
	recipe.ID = f.nextID
	f.recipes = append(f.recipes, *recipe)
	return nil
}

func (f *fakeRecipeStore) AddIngredients(ingredients []models.RecipeIngredient) error {
	for i := range ingredients {
		ingredients[i].NameNorm = normalize.Name(ingredients[i].Name)
		f.ingredients[ingredients[i].RecipeID] = append(f.ingredients[ingredients[i].RecipeID], ingredients[i])
	}
	return nil
}

func (f *fakeRecipeStore) ListByUser(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	for _, recipe := range f.recipes {
		if recipe.UserID == userID {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

func (f *fakeRecipeStore) IngredientsForRecipe(recipeID uint) ([]models.RecipeIngredient, error) {
	return f.ingredients[recipeID], nil
}

func stockFor(t *testing.T, store *fakeFoodStore, userID uint, names ...string) {
	t.Helper()
	for _, name := range names {
		err := store.Insert(&models.FoodEntry{UserID: userID, Name: name, Quantity: 1, Unit: "pcs", ExpirationDate: date(7)})
		require.NoError(t, err)
	}
}

func saveRecipe(t *testing.T, svc *RecipeService, userID uint, title string, ingredientNames ...string) {
	t.Helper()
	input := RecipeInput{Title: title, Description: "test recipe"}
	for _, name := range ingredientNames {
		input.Ingredients = append(input.Ingredients, IngredientInput{Name: name, Quantity: 1, Unit: "pcs"})
	}
	_, _, err := svc.Save(userID, input)
	require.NoError(t, err)
}

func TestSuggestionsFullMatch(t *testing.T) {
	foodStore := newFakeFoodStore()
	recipeStore := newFakeRecipeStore()
	svc := NewRecipeService(recipeStore, foodStore)

	stockFor(t, foodStore, 1, "Tomato", "Pasta", "Cashew Nuts", "Olive Oil")
	saveRecipe(t, svc, 1, "Pasta Pomodoro", "Pasta", "Tomato", "Cashew Nuts", "Olive Oil")

	suggestions, err := svc.Suggestions(1)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	assert.Equal(t, "Pasta Pomodoro", suggestions[0].Title)
	assert.Equal(t, []string{"Pasta", "Tomato", "Cashew Nuts", "Olive Oil"}, suggestions[0].Ingredients)
	assert.Nil(t, suggestions[0].MissingIngredients)
}

func TestSuggestionsPartialMatch(t *testing.T) {
	foodStore := newFakeFoodStore()
	recipeStore := newFakeRecipeStore()
	svc := NewRecipeService(recipeStore, foodStore)

	stockFor(t, foodStore, 1, "Pasta")
	saveRecipe(t, svc, 1, "Pasta Pomodoro", "Pasta", "Tomato", "Olive Oil")

	suggestions, err := svc.Suggestions(1)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	// Missing names keep their display form and ingredient order.
	assert.Equal(t, []string{"Tomato", "Olive Oil"}, suggestions[0].MissingIngredients)
	assert.Nil(t, suggestions[0].Ingredients)
}

func TestSuggestionsMatchingIgnoresCaseAndWhitespace(t *testing.T) {
	foodStore := newFakeFoodStore()
	recipeStore := newFakeRecipeStore()
	svc := NewRecipeService(recipeStore, foodStore)

	stockFor(t, foodStore, 1, " tomato ")
	saveRecipe(t, svc, 1, "Salad", "Tomato")

	suggestions, err := svc.Suggestions(1)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, []string{"Tomato"}, suggestions[0].Ingredients)
}

func TestSuggestionsSkipsRecipesWithoutIngredients(t *testing.T) {
	foodStore := newFakeFoodStore()
	recipeStore := newFakeRecipeStore()
	svc := NewRecipeService(recipeStore, foodStore)

	stockFor(t, foodStore, 1, "Tomato")
	saveRecipe(t, svc, 1, "Empty Recipe")
	saveRecipe(t, svc, 1, "Salad", "Tomato")

	suggestions, err := svc.Suggestions(1)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Salad", suggestions[0].Title)
}

func TestSuggestionsMatchingIgnoresQuantities(t *testing.T) {
	foodStore := newFakeFoodStore()
	recipeStore := newFakeRecipeStore()
	svc := NewRecipeService(recipeStore, foodStore)

	// A tiny amount in stock still counts as present.
	err := foodStore.Insert(&models.FoodEntry{UserID: 1, Name: "Flour", Quantity: 0.01, Unit: "g", ExpirationDate: date(7)})
	require.NoError(t, err)
	saveRecipe(t, svc, 1, "Bread", "Flour")

	suggestions, err := svc.Suggestions(1)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Nil(t, suggestions[0].MissingIngredients)
}

func TestSuggestionsNoRecipes(t *testing.T) {
	foodStore := newFakeFoodStore()
	svc := NewRecipeService(newFakeRecipeStore(), foodStore)

	stockFor(t, foodStore, 2, "Oat Milk")

	suggestions, err := svc.Suggestions(2)
	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestSuggestionsScopedToOwner(t *testing.T) {
	foodStore := newFakeFoodStore()
	recipeStore := newFakeRecipeStore()
	svc := NewRecipeService(recipeStore, foodStore)

	stockFor(t, foodStore, 1, "Tomato")
	saveRecipe(t, svc, 1, "Salad", "Tomato")

	suggestions, err := svc.Suggestions(2)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestionJSONShapes(t *testing.T) {
	full, err := json.Marshal(Suggestion{Title: "A", Ingredients: []string{"x"}})
	require.NoError(t, err)
	assert.NotContains(t, string(full), "missing_ingredients")
	assert.Contains(t, string(full), "ingredients")

	partial, err := json.Marshal(Suggestion{Title: "B", MissingIngredients: []string{"y"}})
	require.NoError(t, err)
	assert.NotContains(t, string(partial), `"ingredients"`)
	assert.Contains(t, string(partial), "missing_ingredients")
}

func TestSaveRecipe(t *testing.T) {
	recipeStore := newFakeRecipeStore()
	svc := NewRecipeService(recipeStore, newFakeFoodStore())

	recipe, ingredients, err := svc.Save(1, RecipeInput{
		Title:       "Pasta Pomodoro",
		Description: "Simple pasta",
		Ingredients: []IngredientInput{
			{Name: "Pasta", Quantity: 200, Unit: "g"},
			{Name: "Tomato", Quantity: 3, Unit: "pcs"},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, recipe.ID)
	require.Len(t, ingredients, 2)
	assert.Equal(t, recipe.ID, ingredients[0].RecipeID)
	assert.Equal(t, "pasta", ingredients[0].NameNorm)
}

func TestSaveRecipeCreateFailure(t *testing.T) {
	recipeStore := newFakeRecipeStore()
	recipeStore.failCreate = true
	svc := NewRecipeService(recipeStore, newFakeFoodStore())

	_, _, err := svc.Save(1, RecipeInput{Title: "Broken"})
	assert.ErrorIs(t, err, ErrCreationFailed)

	// The ingredient insert is never attempted.
	assert.Empty(t, recipeStore.ingredients)
}
