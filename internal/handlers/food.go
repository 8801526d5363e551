package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wasteless-dev/wasteless/internal/models"
	"github.com/wasteless-dev/wasteless/internal/services"
	"github.com/wasteless-dev/wasteless/internal/utils"
)

const dateLayout = "2006-01-02"

type FoodService interface {
	AddOrUpdate(userID uint, input services.FoodItemInput) (string, *models.FoodEntry, error)
	List(userID uint) ([]models.FoodEntry, error)
	Get(userID, itemID uint) (*models.FoodEntry, error)
	Consume(userID, itemID uint, amount float64) (*services.ConsumeResult, error)
	Delete(userID, itemID uint) error
	DeleteAll(userID uint) error
	Expiring(userID uint, days int) ([]models.FoodEntry, error)
}

type FoodHandler struct {
	food FoodService
}

func NewFoodHandler(food FoodService) *FoodHandler {
	return &FoodHandler{food: food}
}

// Quantity carries no binding tag: zero and negative amounts pass
// through unchecked.
type FoodItemRequest struct {
	Name           string  `json:"name" binding:"required"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit" binding:"required"`
	ExpirationDate string  `json:"expiration_date" binding:"required"`
}

type ConsumeRequest struct {
	Quantity float64 `json:"quantity"`
}

type FoodItemResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	NameNorm       string  `json:"name_norm"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	ExpirationDate string  `json:"expiration_date"`
}

func toFoodItemResponse(entry models.FoodEntry) FoodItemResponse {
	return FoodItemResponse{
		ID:             entry.ID,
		Name:           entry.Name,
		NameNorm:       entry.NameNorm,
		Quantity:       entry.Quantity,
		Unit:           entry.Unit,
		ExpirationDate: entry.ExpirationDate.Format(dateLayout),
	}
}

func (h *FoodHandler) AddItem(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body FoodItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	expirationDate, err := time.Parse(dateLayout, body.ExpirationDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiration date, expected YYYY-MM-DD"})
		return
	}

	status, entry, err := h.food.AddOrUpdate(userID, services.FoodItemInput{
		Name:           body.Name,
		Quantity:       body.Quantity,
		Unit:           body.Unit,
		ExpirationDate: expirationDate,
	})

	if err != nil {
		log.Printf("Failed to add food item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	httpStatus := http.StatusOK
	message := "Item updated"

	if status == services.StatusCreated {
		httpStatus = http.StatusCreated
		message = "Item created"
	}

	ctx.JSON(httpStatus, gin.H{
		"message": message,
		"data":    toFoodItemResponse(*entry),
	})
}

func (h *FoodHandler) ListItems(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	entries, err := h.food.List(userID)

	if err != nil {
		log.Printf("Failed to list food items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items := make([]FoodItemResponse, 0, len(entries))

	for _, entry := range entries {
		items = append(items, toFoodItemResponse(entry))
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *FoodHandler) ItemDetail(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, err := parseItemID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	entry, err := h.food.Get(userID, itemID)

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		log.Printf("Failed to fetch food item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toFoodItemResponse(*entry))
}

func (h *FoodHandler) ConsumeItem(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, err := parseItemID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var body ConsumeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.food.Consume(userID, itemID, body.Quantity)

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		log.Printf("Failed to consume food item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if result.Removed {
		ctx.JSON(http.StatusOK, gin.H{"message": "Item consumed and removed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Item quantity updated",
		"data":    toFoodItemResponse(*result.Entry),
	})
}

func (h *FoodHandler) DeleteItem(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, err := parseItemID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	if err := h.food.Delete(userID, itemID); err != nil {
		log.Printf("Failed to delete food item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

func (h *FoodHandler) DeleteAllItems(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.food.DeleteAll(userID); err != nil {
		log.Printf("Failed to delete food items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("All food items for user %d deleted", userID)})
}

func (h *FoodHandler) ExpiringItems(ctx *gin.Context) {
	userID, err := utils.CurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	days, err := strconv.Atoi(ctx.DefaultQuery("days", strconv.Itoa(services.DefaultExpiringDays)))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
		return
	}

	entries, err := h.food.Expiring(userID, days)

	if err != nil {
		log.Printf("Failed to list expiring items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items := make([]FoodItemResponse, 0, len(entries))

	for _, entry := range entries {
		items = append(items, toFoodItemResponse(entry))
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

func parseItemID(ctx *gin.Context) (uint, error) {
	itemID, err := strconv.ParseUint(ctx.Param("item_id"), 10, 64)

	if err != nil {
		return 0, err
	}

	return uint(itemID), nil
}
