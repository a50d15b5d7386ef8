package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent     = "STUDENT"
	RoleInstitution = "INSTITUTION"
	RoleCompany     = "COMPANY"
	RoleAdmin       = "ADMIN"
)

// User is the single identity record. The role column discriminates which
// profile table (student/institution/company) carries the rest of the account.
type User struct {
	gorm.Model
	Name      string     `gorm:"default:''" json:"name"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Mobile    string     `gorm:"default:''" json:"mobile"`
	Role      string     `gorm:"default:'STUDENT'" json:"role"`
	Password  string     `gorm:"not null" json:"-"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `gorm:"default:false" json:"-"`
}
