package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"store-api/controllers"
	"store-api/infra"
	"store-api/models"
	"store-api/repositories"
	"store-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {
	userRepository := repositories.NewUserRepository(db)
	itemRepository := repositories.NewItemRepository(db)
	orderRepository := repositories.NewOrderRepository(db)

	userService := services.NewUserService(userRepository)
	itemService := services.NewItemService(itemRepository)
	orderService := services.NewOrderService(orderRepository, userRepository, itemRepository)
	authService := services.NewAuthService(userRepository)

	userController := controllers.NewUserController(userService)
	itemController := controllers.NewItemController(itemService)
	orderController := controllers.NewOrderController(orderService)
	authController := controllers.NewAuthController(authService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Welcome to the Store API"})
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	userRouter := v1.Group("/users")
	itemRouter := v1.Group("/items")
	orderRouter := v1.Group("/orders")
	authRouter := v1.Group("/auth")

	userRouter.POST("/", userController.Create)
	userRouter.GET("/", userController.FindAll)
	userRouter.GET("/:id", userController.FindById)

	itemRouter.POST("/", itemController.Create)
	itemRouter.GET("/", itemController.FindAll)
	itemRouter.GET("/:id", itemController.FindById)

	orderRouter.POST("/", orderController.Create)
	orderRouter.GET("/", orderController.FindAll)
	orderRouter.GET("/:id", orderController.FindById)

	authRouter.POST("/login", authController.Login)

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()

	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Order{}, &models.OrderItem{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	if os.Getenv("SEED_DATA") == "true" {
		if err := infra.SeedDatabase(db); err != nil {
			log.Printf("Failed to seed database: %v", err)
		}
	}

	return db
}

func main() {
	db := initDB()
	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
