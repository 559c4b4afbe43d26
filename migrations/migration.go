package main

import (
	"store-api/infra"
	"store-api/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Order{}, &models.OrderItem{}); err != nil {
		panic("Failed to migrate database")
	}
}
