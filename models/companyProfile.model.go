package models

import "gorm.io/gorm"

type CompanyProfile struct {
	gorm.Model
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Industry    string `gorm:"default:''" json:"industry"`
	Website     string `gorm:"default:''" json:"website"`
	City        string `gorm:"default:''" json:"city"`
	User        User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
