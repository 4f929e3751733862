package models

// Dish references its season, country, group and chief by raw id.
// No associations are declared on purpose: deletes must not cascade and a
// dish may keep a dangling reference after the referenced row is gone.
type Dish struct {
	ID        uint   `gorm:"column:id_dish;primaryKey" json:"id_dish"`
	Name      string `gorm:"column:name_dish;size:30" json:"name_dish"`
	SeasonID  *uint  `gorm:"column:id_season" json:"id_season"`
	CountryID *uint  `gorm:"column:id_country" json:"id_country"`
	GroupID   *uint  `gorm:"column:id_group" json:"id_group"`
	ChiefID   *uint  `gorm:"column:id_chief" json:"id_chief"`
}

func (Dish) TableName() string { return "dish" }
