package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job is a company posting. A zero MinAcademicScore/MinWorkExperience or an
// empty certificate/skill list means that requirement is not part of the
// match-score weighting.
type Job struct {
	gorm.Model
	CompanyID            uint                        `gorm:"index;not null" json:"company_id"`
	Title                string                      `gorm:"not null" json:"title"`
	Description          string                      `gorm:"default:''" json:"description"`
	MinAcademicScore     float64                     `gorm:"default:0" json:"min_academic_score"`
	MinWorkExperience    float64                     `gorm:"default:0" json:"min_work_experience"` // years
	RequiredCertificates datatypes.JSONSlice[string] `json:"required_certificates"`
	RequiredSkills       datatypes.JSONSlice[string] `json:"required_skills"`
	Deadline             *time.Time                  `json:"deadline"`
	IsActive             bool                        `gorm:"default:true" json:"is_active"`
	ApplicantCount       int                         `gorm:"default:0" json:"applicant_count"`
	IsDeleted            bool                        `gorm:"default:false" json:"-"`
	Company              User                        `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
