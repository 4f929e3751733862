package models

type Product struct {
	ID       uint   `gorm:"column:id_prod;primaryKey" json:"id_prod"`
	Name     string `gorm:"column:name_product;size:30" json:"name_product"`
	Calories int    `gorm:"column:calories" json:"calories"`
	Cost     int    `gorm:"column:cost_product" json:"cost_product"` // cost per kilogram
	SeasonID *uint  `gorm:"column:id_season" json:"id_season"`
}

func (Product) TableName() string { return "product" }
