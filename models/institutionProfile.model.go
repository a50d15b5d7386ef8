package models

import "gorm.io/gorm"

type InstitutionProfile struct {
	gorm.Model
	UserID          uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	InstitutionName string `gorm:"not null" json:"institution_name"`
	Website         string `gorm:"default:''" json:"website"`
	Address         string `gorm:"default:''" json:"address"`
	City            string `gorm:"default:''" json:"city"`
	User            User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
