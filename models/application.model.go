package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// ApplicationStatusPending indicates that the application awaits a decision
	ApplicationStatusPending = "pending"
	// ApplicationStatusAdmitted indicates the institution offered a seat
	ApplicationStatusAdmitted = "admitted"
	// ApplicationStatusRejected indicates the application was turned down
	ApplicationStatusRejected = "rejected"
	// ApplicationStatusWaitlisted indicates the applicant is queued for a vacated seat
	ApplicationStatusWaitlisted = "waitlisted"
	// ApplicationStatusAccepted indicates the student accepted the offer
	ApplicationStatusAccepted = "accepted"
)

// MaxApplicationsPerInstitution caps how many applications a student may hold
// at one institution at the same time.
const MaxApplicationsPerInstitution = 2

type Application struct {
	gorm.Model
	StudentID            uint      `gorm:"index;not null" json:"student_id"`
	CourseID             uint      `gorm:"index;not null" json:"course_id"`
	InstitutionID        uint      `gorm:"index;not null" json:"institution_id"`
	Status               string    `gorm:"default:'pending'" json:"status"`
	StatusReason         string    `gorm:"default:''" json:"status_reason"`
	AdmissionPublished   bool      `gorm:"default:false" json:"admission_published"`
	PromotedFromWaitlist bool      `gorm:"default:false" json:"promoted_from_waitlist"`
	AppliedAt            time.Time `gorm:"index" json:"applied_at"`
	IsDeleted            bool      `gorm:"default:false" json:"-"`
	Student              User      `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Course               Course    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}
