package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubjectGrade is one graded subject on a student's record
type SubjectGrade struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
}

// Certificate is a credential a student has earned
type Certificate struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer"`
	FilePath string `json:"file_path,omitempty"`
}

type StudentProfile struct {
	gorm.Model
	UserID         uint                                `gorm:"uniqueIndex;not null" json:"user_id"`
	Address        string                              `gorm:"default:''" json:"address"`
	City           string                              `gorm:"default:''" json:"city"`
	AcademicScore  float64                             `gorm:"default:0" json:"academic_score"`
	WorkExperience float64                             `gorm:"default:0" json:"work_experience"` // years
	Skills         datatypes.JSONSlice[string]         `json:"skills"`
	SubjectGrades  datatypes.JSONSlice[SubjectGrade]   `json:"subject_grades"`
	Certificates   datatypes.JSONSlice[Certificate]    `json:"certificates"`
	TranscriptPath string                              `gorm:"default:''" json:"transcript_path"`
	HasTranscript  bool                                `gorm:"default:false" json:"has_transcript"`
	StudyCompleted bool                                `gorm:"default:false" json:"study_completed"`
	User           User                                `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
