package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
	"github.com/myloyo/bd-8/services"
)

type OrderController struct {
	db  *gorm.DB
	svc *services.OrderService
}

func NewOrderController(db *gorm.DB, svc *services.OrderService) *OrderController {
	return &OrderController{db: db, svc: svc}
}

type CreateOrderInput struct {
	DishID *uint `json:"id_dish" binding:"required"`
	UserID *uint `json:"id_user" binding:"required"`
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderID, err := ctl.svc.CreateOrder(*input.DishID, *input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "order created", "order_id": orderID})
}

// GET /orders
func (ctl *OrderController) List(c *gin.Context) {
	orders := []models.OrderOfDishes{}
	if err := ctl.db.Find(&orders).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// DELETE /orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var order models.OrderOfDishes
	if err := ctl.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.db.Delete(&order).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
