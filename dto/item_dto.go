package dto

import "store-api/models"

type CreateItemInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type ItemResponse struct {
	ItemID      uint    `json:"itemId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func NewItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
	}
}

func NewItemResponseList(items []models.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, NewItemResponse(&items[i]))
	}
	return responses
}
