package repositories

import (
	"errors"

	"store-api/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	Create(newItem models.Item) (*models.Item, error)
	FindAll() (*[]models.Item, error)
	FindById(itemID uint) (*models.Item, error)
	ExistsById(itemID uint) (bool, error)
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(newItem models.Item) (*models.Item, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

func (r *ItemRepository) FindAll() (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindById(itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) ExistsById(itemID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Item{}).Where("id = ?", itemID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
