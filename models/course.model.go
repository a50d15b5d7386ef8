package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseRequirements lists the subjects an applicant must have passed and the
// minimum letter grade per subject. A nil Subjects or MinGrades means the
// course was published without requirements and eligibility fails closed.
type CourseRequirements struct {
	Subjects  []string          `json:"subjects"`
	MinGrades map[string]string `json:"minGrades"`
}

type Course struct {
	gorm.Model
	InstitutionID uint                                      `gorm:"index;not null" json:"institution_id"`
	Title         string                                    `gorm:"not null" json:"title"`
	Description   string                                    `gorm:"default:''" json:"description"`
	Tuition       float64                                   `gorm:"default:0" json:"tuition"`
	Seats         int                                       `gorm:"default:0" json:"seats"`
	Deadline      *time.Time                                `json:"deadline"`
	Status        string                                    `gorm:"default:'ACTIVE'" json:"status"` // ACTIVE, CLOSED
	Requirements  datatypes.JSONType[CourseRequirements]    `json:"requirements"`
	IsDeleted     bool                                      `gorm:"default:false" json:"-"`
	Institution   User                                      `gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" json:"-"`
}
