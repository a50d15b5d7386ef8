package models

import "gorm.io/gorm"

const (
	NotificationSeverityInfo    = "info"
	NotificationSeveritySuccess = "success"
	NotificationSeverityWarning = "warning"
)

type Notification struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	Title     string `gorm:"not null" json:"title"`
	Message   string `gorm:"default:''" json:"message"`
	Severity  string `gorm:"default:'info'" json:"severity"`
	ActionURL string `gorm:"default:''" json:"action_url"`
	IsRead    bool   `gorm:"default:false" json:"is_read"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
	User      User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
