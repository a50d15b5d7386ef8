package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	JobApplicationStatusPending      = "pending"
	JobApplicationStatusShortlisted  = "shortlisted"
	JobApplicationStatusInterviewing = "interviewing"
	JobApplicationStatusOffered      = "offered"
	JobApplicationStatusRejected     = "rejected"
)

type JobApplication struct {
	gorm.Model
	StudentID      uint      `gorm:"index;not null" json:"student_id"`
	JobID          uint      `gorm:"index;not null" json:"job_id"`
	MatchScore     int       `gorm:"default:0" json:"match_score"`
	InterviewReady bool      `gorm:"default:false" json:"interview_ready"`
	Status         string    `gorm:"default:'pending'" json:"status"`
	AppliedAt      time.Time `gorm:"index" json:"applied_at"`
	IsDeleted      bool      `gorm:"default:false" json:"-"`
	Student        User      `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Job            Job       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
