package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wasteless-dev/wasteless/internal/models"
	"github.com/wasteless-dev/wasteless/internal/services"
	"github.com/wasteless-dev/wasteless/internal/utils"
)

type RecipeService interface {
	Save(userID uint, input services.RecipeInput) (*models.Recipe, []models.RecipeIngredient, error)
	Suggestions(userID uint) ([]services.Suggestion, error)
}

type RecipeHandler struct {
	recipes RecipeService
}

func NewRecipeHandler(recipes RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

type IngredientRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit" binding:"required"`
}

type SaveRecipeRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"dive"`
}

type RecipeResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type IngredientResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

func (h *RecipeHandler) SaveRecipe(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body SaveRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	input := services.RecipeInput{
		Title:       body.Title,
		Description: body.Description,
	}

	for _, ing := range body.Ingredients {
		input.Ingredients = append(input.Ingredients, services.IngredientInput{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	recipe, ingredients, err := h.recipes.Save(userID, input)

	if err != nil {
		if errors.Is(err, services.ErrCreationFailed) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Error creating recipe"})
			return
		}
		log.Printf("Failed to save recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ingredientResponses := make([]IngredientResponse, 0, len(ingredients))

	for _, ing := range ingredients {
		ingredientResponses = append(ingredientResponses, IngredientResponse{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Recipe saved",
		"recipe": RecipeResponse{
			ID:          recipe.ID,
			Title:       recipe.Title,
			Description: recipe.Description,
		},
		"ingredients": ingredientResponses,
	})
}

func (h *RecipeHandler) Suggest(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	suggestions, err := h.recipes.Suggestions(userID)

	if err != nil {
		log.Printf("Failed to compute suggestions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
