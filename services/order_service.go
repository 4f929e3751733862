package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder inserts an order stamped with the current time and returns
// the generated id.
func (s *OrderService) CreateOrder(dishID, userID uint) (uint, error) {
	order := models.OrderOfDishes{
		DishID: dishID,
		UserID: userID,
		Date:   time.Now(),
	}
	if err := s.db.Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}
