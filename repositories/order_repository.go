package repositories

import (
	"errors"

	"store-api/models"

	"gorm.io/gorm"
)

type IOrderRepository interface {
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	FindAll() (*[]models.Order, error)
	FindById(orderID uint) (*models.Order, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems persists an order header and its line items as one unit.
// The header insert assigns order.ID before the transaction finalizes; each
// line item is stamped with that ID and inserted inside the same transaction.
// Any failure rolls back every row. On success order.Items holds the inserted
// rows, so callers never need to re-read the order.
func (r *OrderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	order.Items = items
	return nil
}

func (r *OrderRepository) FindAll() (*[]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("Items").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return &orders, nil
}

func (r *OrderRepository) FindById(orderID uint) (*models.Order, error) {
	var order models.Order
	result := r.db.Preload("Items").First(&order, "id = ?", orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &order, nil
}
