package models

type Season struct {
	ID   uint   `gorm:"column:id_season;primaryKey" json:"id_season"`
	Name string `gorm:"column:name_season;size:30" json:"name_season"`
}

func (Season) TableName() string { return "season" }
