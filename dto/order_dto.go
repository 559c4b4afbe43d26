package dto

import (
	"time"

	"store-api/models"
)

type OrderItemInput struct {
	ItemID uint `json:"itemId" binding:"required"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity" binding:"omitempty,gt=0"`
}

type CreateOrderInput struct {
	UserID uint             `json:"userId" binding:"required"`
	Items  []OrderItemInput `json:"items"`
}

type OrderItemResponse struct {
	ID       uint `json:"id"`
	OrderID  uint `json:"orderId"`
	ItemID   uint `json:"itemId"`
	Quantity int  `json:"quantity"`
}

type OrderResponse struct {
	OrderID   uint                `json:"orderId"`
	UserID    uint                `json:"userId"`
	OrderDate time.Time           `json:"orderDate"`
	Status    models.OrderStatus  `json:"status"`
	Items     []OrderItemResponse `json:"items"`
}

// NewOrderResponse maps an order and its line item rows field by field.
// After a create the rows come straight from the transaction, not from a
// re-read.
func NewOrderResponse(order *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, orderItem := range order.Items {
		items = append(items, OrderItemResponse{
			ID:       orderItem.ID,
			OrderID:  orderItem.OrderID,
			ItemID:   orderItem.ItemID,
			Quantity: orderItem.Quantity,
		})
	}
	return OrderResponse{
		OrderID:   order.ID,
		UserID:    order.UserID,
		OrderDate: order.OrderDate,
		Status:    order.Status,
		Items:     items,
	}
}

func NewOrderResponseList(orders []models.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, NewOrderResponse(&orders[i]))
	}
	return responses
}
