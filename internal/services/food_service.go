package services

import (
	"time"

	"github.com/wasteless-dev/wasteless/internal/models"
)

// FoodStore is the slice of store access the inventory logic needs.
type FoodStore interface {
	FindExisting(userID uint, name, unit string, expirationDate time.Time) (*models.FoodEntry, error)
	Insert(entry *models.FoodEntry) error
	UpdateQuantity(userID, itemID uint, quantity float64) (*models.FoodEntry, error)
	ListByUser(userID uint) ([]models.FoodEntry, error)
	Get(userID, itemID uint) (*models.FoodEntry, error)
	Delete(userID, itemID uint) error
	DeleteAllForUser(userID uint) error
	ListExpiringBetween(userID uint, start, end time.Time) ([]models.FoodEntry, error)
}

type FoodService struct {
	store FoodStore
}

func NewFoodService(store FoodStore) *FoodService {
	return &FoodService{store: store}
}

type FoodItemInput struct {
	Name           string
	Quantity       float64
	Unit           string
	ExpirationDate time.Time
}

const (
	StatusCreated = "created"
	StatusUpdated = "updated"
)

// DefaultExpiringDays is the expiry window used when the caller does
// not specify one.
const DefaultExpiringDays = 5

// AddOrUpdate merges the item into an existing entry with the same
// (normalized name, unit, expiration date) identity, or inserts a new
// one. Entries with different expiry dates stay separate since they
// decay independently.
func (s *FoodService) AddOrUpdate(userID uint, input FoodItemInput) (string, *models.FoodEntry, error) {
	existing, err := s.store.FindExisting(userID, input.Name, input.Unit, input.ExpirationDate)

	if err != nil {
		return "", nil, err
	}

	if existing != nil {
		entry, err := s.store.UpdateQuantity(userID, existing.ID, existing.Quantity+input.Quantity)

		if err != nil {
			return "", nil, err
		}

		return StatusUpdated, entry, nil
	}

	entry := &models.FoodEntry{
		UserID:         userID,
		Name:           input.Name,
		Quantity:       input.Quantity,
		Unit:           input.Unit,
		ExpirationDate: input.ExpirationDate,
	}

	if err := s.store.Insert(entry); err != nil {
		return "", nil, err
	}

	return StatusCreated, entry, nil
}

func (s *FoodService) List(userID uint) ([]models.FoodEntry, error) {
	entries, err := s.store.ListByUser(userID)

	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.FoodEntry{}
	}

	return entries, nil
}

func (s *FoodService) Get(userID, itemID uint) (*models.FoodEntry, error) {
	entry, err := s.store.Get(userID, itemID)

	if err != nil {
		return nil, err
	}

	if entry == nil {
		return nil, ErrNotFound
	}

	return entry, nil
}

type ConsumeResult struct {
	Removed bool
	Entry   *models.FoodEntry
}

// Consume subtracts amount from the entry. Driving the quantity to
// zero or below removes the entry outright, even when the amount
// overshoots the stored quantity.
func (s *FoodService) Consume(userID, itemID uint, amount float64) (*ConsumeResult, error) {
	entry, err := s.store.Get(userID, itemID)

	if err != nil {
		return nil, err
	}

	if entry == nil {
		return nil, ErrNotFound
	}

	newQuantity := entry.Quantity - amount

	if newQuantity <= 0 {
		if err := s.store.Delete(userID, itemID); err != nil {
			return nil, err
		}

		return &ConsumeResult{Removed: true}, nil
	}

	updated, err := s.store.UpdateQuantity(userID, itemID, newQuantity)

	if err != nil {
		return nil, err
	}

	return &ConsumeResult{Entry: updated}, nil
}

func (s *FoodService) Delete(userID, itemID uint) error {
	return s.store.Delete(userID, itemID)
}

func (s *FoodService) DeleteAll(userID uint) error {
	return s.store.DeleteAllForUser(userID)
}

// Expiring returns entries whose expiration date falls inclusively in
// [today, today+days], soonest first.
func (s *FoodService) Expiring(userID uint, days int) ([]models.FoodEntry, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	until := today.AddDate(0, 0, days)

	entries, err := s.store.ListExpiringBetween(userID, today, until)

	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.FoodEntry{}
	}

	return entries, nil
}
