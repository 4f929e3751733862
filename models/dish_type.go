package models

// DishType is the "group" a dish belongs to (soup, dessert, ...).
type DishType struct {
	ID   uint   `gorm:"column:id_group;primaryKey" json:"id_group"`
	Type string `gorm:"column:type;size:30" json:"type"`
}

func (DishType) TableName() string { return "dish_type" }
