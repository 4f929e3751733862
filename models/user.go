package models

import "time"

// User lives in the legacy "human" table. Email uniqueness is checked at
// registration time, not enforced by the schema.
type User struct {
	ID           uint       `gorm:"column:id_user;primaryKey" json:"id_user"`
	Name         string     `gorm:"column:name_user;size:30" json:"name_user"`
	Email        string     `gorm:"column:email;size:50" json:"email"`
	BirthDate    *time.Time `gorm:"column:age" json:"-"`
	CountryID    *uint      `gorm:"column:id_country" json:"id_country"`
	Sex          string     `gorm:"column:sex;size:10" json:"sex"`
	PasswordHash string     `gorm:"column:password_hash;size:128" json:"-"`
	IsAdmin      bool       `gorm:"column:is_admin;default:false" json:"is_admin"`
}

func (User) TableName() string { return "human" }
