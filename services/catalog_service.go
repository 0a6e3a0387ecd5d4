package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/models"
)

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListFoodItems returns the full catalog in id order.
func (cs *CatalogService) ListFoodItems() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := cs.DB.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return items, nil
}

// SearchFoodItems matches the trimmed query case-insensitively against item
// name or category. An empty query returns the full catalog.
func (cs *CatalogService) SearchFoodItems(query string) ([]models.FoodItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return cs.ListFoodItems()
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var items []models.FoodItem
	if err := cs.DB.
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return items, nil
}

// GetFoodItem looks one catalog item up by id.
func (cs *CatalogService) GetFoodItem(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := cs.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food item %d", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return &item, nil
}

// SeedFoodItems inserts the default catalog when the table is empty.
func SeedFoodItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	items := models.DefaultFoodItems()
	return db.Create(&items).Error
}
