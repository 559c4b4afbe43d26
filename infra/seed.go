package infra

import (
	"encoding/json"
	"log"
	"os"

	"store-api/dto"
	"store-api/models"
	"store-api/repositories"
	"store-api/services"

	"gorm.io/gorm"
)

type seedData struct {
	Users  []dto.CreateUserInput  `json:"users"`
	Items  []dto.CreateItemInput  `json:"items"`
	Orders []dto.CreateOrderInput `json:"orders"`
}

// SeedDatabase loads seed_data.json once. A store that already holds users is
// left untouched. Orders go through the same transactional create path as the
// live endpoint.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already contains data, skipping seed")
		return nil
	}

	path := os.Getenv("SEED_FILE")
	if path == "" {
		path = "seed_data.json"
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	userRepository := repositories.NewUserRepository(db)
	itemRepository := repositories.NewItemRepository(db)
	orderRepository := repositories.NewOrderRepository(db)
	userService := services.NewUserService(userRepository)
	itemService := services.NewItemService(itemRepository)
	orderService := services.NewOrderService(orderRepository, userRepository, itemRepository)

	log.Println("Seeding users...")
	for _, userInput := range data.Users {
		if _, err := userService.Create(userInput); err != nil {
			return err
		}
	}

	log.Println("Seeding items...")
	for _, itemInput := range data.Items {
		if _, err := itemService.Create(itemInput); err != nil {
			return err
		}
	}

	log.Println("Seeding orders...")
	for _, orderInput := range data.Orders {
		if _, err := orderService.Create(orderInput); err != nil {
			return err
		}
	}

	log.Println("Database seeded successfully")
	return nil
}
