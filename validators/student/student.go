package studentValidator

import (
	"careerbridge/matching"
	"careerbridge/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest is the validated profile payload. Pointer fields are
// only applied when present.
type UpdateProfileRequest struct {
	Address        *string `json:"address"`
	City           *string `json:"city"`
	AcademicScore  *float64 `json:"academicScore"`
	WorkExperience *float64 `json:"workExperience"`
	Skills         *[]string `json:"skills"`
	SubjectGrades  *[]struct {
		Subject string `json:"subject"`
		Grade   string `json:"grade"`
	} `json:"subjectGrades"`
	StudyCompleted *bool `json:"studyCompleted"`
}

// UploadTranscriptRequest carries the base64 PDF data URI
type UploadTranscriptRequest struct {
	Document string `json:"document"`
}

// AddCertificateRequest appends one certificate, optionally with a PDF
type AddCertificateRequest struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer"`
	Document string `json:"document"`
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AcademicScore != nil && (*reqData.AcademicScore < 0 || *reqData.AcademicScore > 100) {
			errors["academicScore"] = "Academic score must be between 0 and 100!"
		}

		if reqData.WorkExperience != nil && *reqData.WorkExperience < 0 {
			errors["workExperience"] = "Work experience cannot be negative!"
		}

		if reqData.SubjectGrades != nil {
			for _, sg := range *reqData.SubjectGrades {
				if strings.TrimSpace(sg.Subject) == "" {
					errors["subjectGrades"] = "Subject name is required!"
					break
				}
				if matching.GradePoints(sg.Grade) == 0 && strings.ToUpper(strings.TrimSpace(sg.Grade)) != "F" {
					errors["subjectGrades"] = "Grades must be one of A, B, C, D, E, F!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// UploadTranscript validator middleware
func UploadTranscript() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UploadTranscriptRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Document) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"document": "Transcript document is required!",
			})
		}

		c.Locals("validatedTranscript", reqData)
		return c.Next()
	}
}

// AddCertificate validator middleware
func AddCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddCertificateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Certificate name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCertificate", reqData)
		return c.Next()
	}
}
