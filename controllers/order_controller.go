package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"store-api/constants"
	"store-api/dto"
	"store-api/services"

	"github.com/gin-gonic/gin"
)

type IOrderController interface {
	Create(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
}

type OrderController struct {
	service services.IOrderService
}

func NewOrderController(service services.IOrderService) IOrderController {
	return &OrderController{service: service}
}

func (c *OrderController) Create(ctx *gin.Context) {
	var input dto.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newOrder, err := c.service.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		// Transaction already rolled back; nothing partial is visible.
		log.Printf("Create order error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": newOrder})
}

func (c *OrderController) FindAll(ctx *gin.Context) {
	orders, err := c.service.FindAll()
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No orders found"})
			return
		}
		log.Printf("Find orders error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": orders})
}

func (c *OrderController) FindById(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	order, err := c.service.FindById(uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Find order error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": order})
}
