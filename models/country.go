package models

type Country struct {
	ID   uint   `gorm:"column:id_country;primaryKey" json:"id_country"`
	Name string `gorm:"column:name_country;size:30" json:"name_country"`
}

func (Country) TableName() string { return "country" }
