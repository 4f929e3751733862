package models

import "time"

type DishRating struct {
	ID      uint      `gorm:"column:id_rate;primaryKey" json:"id_rate"`
	UserID  uint      `gorm:"column:id_user" json:"id_user"`
	DishID  uint      `gorm:"column:id_dish" json:"id_dish"`
	Rate    int       `gorm:"column:rate" json:"rate"`
	Comment string    `gorm:"column:comment;size:255" json:"comment"`
	Date    time.Time `gorm:"column:date" json:"date"`
}

func (DishRating) TableName() string { return "dish_rating" }
