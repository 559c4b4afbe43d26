package services

import (
	"store-api/dto"
	"store-api/models"
	"store-api/repositories"
)

type IItemService interface {
	Create(createItemInput dto.CreateItemInput) (*dto.ItemResponse, error)
	FindAll() ([]dto.ItemResponse, error)
	FindById(itemID uint) (*dto.ItemResponse, error)
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) Create(createItemInput dto.CreateItemInput) (*dto.ItemResponse, error) {
	newItem, err := s.repository.Create(models.Item{
		Name:        createItemInput.Name,
		Description: createItemInput.Description,
		Price:       *createItemInput.Price,
	})
	if err != nil {
		return nil, err
	}

	response := dto.NewItemResponse(newItem)
	return &response, nil
}

func (s *ItemService) FindAll() ([]dto.ItemResponse, error) {
	items, err := s.repository.FindAll()
	if err != nil {
		return nil, err
	}
	return dto.NewItemResponseList(*items), nil
}

func (s *ItemService) FindById(itemID uint) (*dto.ItemResponse, error) {
	item, err := s.repository.FindById(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	response := dto.NewItemResponse(item)
	return &response, nil
}
