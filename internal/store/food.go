package store

import (
	"errors"
	"time"

	"github.com/wasteless-dev/wasteless/internal/models"
	"github.com/wasteless-dev/wasteless/internal/normalize"
	"gorm.io/gorm"
)

// FoodStore runs the food_stock queries. Every query is scoped by the
// owning user id.
type FoodStore struct {
	db *gorm.DB
}

func NewFoodStore(db *gorm.DB) *FoodStore {
	return &FoodStore{db: db}
}

// FindExisting looks up the entry matching the merge identity
// (normalized name, unit, expiration date). Returns (nil, nil) when
// no such entry exists.
func (s *FoodStore) FindExisting(userID uint, name, unit string, expirationDate time.Time) (*models.FoodEntry, error) {
	var entry models.FoodEntry

	err := s.db.
		Where("user_id = ? AND name_norm = ? AND unit = ? AND expiration_date = ?",
			userID, normalize.Name(name), unit, expirationDate).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

// Insert stores a new entry, deriving its normalized name key.
func (s *FoodStore) Insert(entry *models.FoodEntry) error {
	entry.NameNorm = normalize.Name(entry.Name)
	return s.db.Create(entry).Error
}

func (s *FoodStore) UpdateQuantity(userID, itemID uint, quantity float64) (*models.FoodEntry, error) {
	err := s.db.Model(&models.FoodEntry{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity).Error

	if err != nil {
		return nil, err
	}

	var entry models.FoodEntry

	if err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *FoodStore) ListByUser(userID uint) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry

	if err := s.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

// Get returns (nil, nil) when the entry is absent for that user.
func (s *FoodStore) Get(userID, itemID uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry

	err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

// Delete is idempotent; deleting an absent entry is not an error.
func (s *FoodStore) Delete(userID, itemID uint) error {
	return s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.FoodEntry{}).Error
}

func (s *FoodStore) DeleteAllForUser(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.FoodEntry{}).Error
}

func (s *FoodStore) ListExpiringBetween(userID uint, start, end time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry

	err := s.db.
		Where("user_id = ? AND expiration_date >= ? AND expiration_date <= ?", userID, start, end).
		Order("expiration_date ASC").
		Find(&entries).Error

	if err != nil {
		return nil, err
	}

	return entries, nil
}
