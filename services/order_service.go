package services

import (
	"store-api/dto"
	"store-api/models"
	"store-api/repositories"
)

type IOrderService interface {
	Create(createOrderInput dto.CreateOrderInput) (*dto.OrderResponse, error)
	FindAll() ([]dto.OrderResponse, error)
	FindById(orderID uint) (*dto.OrderResponse, error)
}

type OrderService struct {
	orderRepository repositories.IOrderRepository
	userRepository  repositories.IUserRepository
	itemRepository  repositories.IItemRepository
}

func NewOrderService(
	orderRepository repositories.IOrderRepository,
	userRepository repositories.IUserRepository,
	itemRepository repositories.IItemRepository,
) IOrderService {
	return &OrderService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
		itemRepository:  itemRepository,
	}
}

// Create validates the referenced user and items, then writes the order
// header and all line items in a single transaction. Either every row is
// persisted or none; the response is built from the inserted rows.
func (s *OrderService) Create(createOrderInput dto.CreateOrderInput) (*dto.OrderResponse, error) {
	exists, err := s.userRepository.ExistsById(createOrderInput.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	orderItems := make([]models.OrderItem, 0, len(createOrderInput.Items))
	for _, itemInput := range createOrderInput.Items {
		exists, err := s.itemRepository.ExistsById(itemInput.ItemID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrItemNotFound
		}

		quantity := itemInput.Quantity
		if quantity == 0 {
			quantity = 1
		}
		orderItems = append(orderItems, models.OrderItem{
			ItemID:   itemInput.ItemID,
			Quantity: quantity,
		})
	}

	order := models.Order{
		UserID: createOrderInput.UserID,
		Status: models.OrderStatusPending,
	}
	if err := s.orderRepository.CreateWithItems(&order, orderItems); err != nil {
		return nil, err
	}

	response := dto.NewOrderResponse(&order)
	return &response, nil
}

func (s *OrderService) FindAll() ([]dto.OrderResponse, error) {
	orders, err := s.orderRepository.FindAll()
	if err != nil {
		return nil, err
	}
	if len(*orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return dto.NewOrderResponseList(*orders), nil
}

func (s *OrderService) FindById(orderID uint) (*dto.OrderResponse, error) {
	order, err := s.orderRepository.FindById(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	response := dto.NewOrderResponse(order)
	return &response, nil
}
