package models

type Chief struct {
	ID        uint   `gorm:"column:id_chief;primaryKey" json:"id_chief"`
	Name      string `gorm:"column:name_chief;size:30" json:"name_chief"`
	CountryID *uint  `gorm:"column:id_country" json:"id_country"`
	ExpYears  int    `gorm:"column:exp_years" json:"exp_years"`
}

func (Chief) TableName() string { return "chief" }
