package models

// Recipe is one composition line of a dish, keyed by (dish, product).
type Recipe struct {
	DishID    uint `gorm:"column:id_dish;primaryKey" json:"id_dish"`
	ProductID uint `gorm:"column:id_product;primaryKey" json:"id_product"`
	Gramms    int  `gorm:"column:gramms" json:"gramms"`
}

func (Recipe) TableName() string { return "recipe" }
