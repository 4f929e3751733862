package models

import "time"

type OrderOfDishes struct {
	ID     uint      `gorm:"column:id_order;primaryKey" json:"id_order"`
	DishID uint      `gorm:"column:id_dish" json:"id_dish"`
	UserID uint      `gorm:"column:id_user" json:"id_user"`
	Date   time.Time `gorm:"column:date" json:"date"`
}

func (OrderOfDishes) TableName() string { return "order_of_dishes" }
