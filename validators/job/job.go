package jobValidator

import (
	"careerbridge/middleware"
	"careerbridge/models"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// JobRequest is the validated create/update payload
type JobRequest struct {
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	MinAcademicScore     *float64  `json:"minAcademicScore"`
	MinWorkExperience    *float64  `json:"minWorkExperience"`
	RequiredCertificates *[]string `json:"requiredCertificates"`
	RequiredSkills       *[]string `json:"requiredSkills"`
	Deadline             string    `json:"deadline"` // RFC3339
	IsActive             *bool     `json:"isActive"`
}

// StatusRequest is the company's status update on a job application
type StatusRequest struct {
	Status string `json:"status"`
}

// ParsedDeadline converts the deadline string; empty means no deadline
func (r *JobRequest) ParsedDeadline() (*time.Time, error) {
	if strings.TrimSpace(r.Deadline) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, r.Deadline)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func validateJobFields(reqData *JobRequest, requireTitle bool) map[string]string {
	errors := make(map[string]string)

	if requireTitle && len(strings.TrimSpace(reqData.Title)) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	if reqData.MinAcademicScore != nil && (*reqData.MinAcademicScore < 0 || *reqData.MinAcademicScore > 100) {
		errors["minAcademicScore"] = "Minimum academic score must be between 0 and 100!"
	}

	if reqData.MinWorkExperience != nil && *reqData.MinWorkExperience < 0 {
		errors["minWorkExperience"] = "Minimum work experience cannot be negative!"
	}

	if _, err := reqData.ParsedDeadline(); err != nil {
		errors["deadline"] = "Deadline must be an RFC3339 timestamp!"
	}

	return errors
}

// CreateJob validator middleware
func CreateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(JobRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateJobFields(reqData, true); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}

// UpdateJob validator middleware; all fields optional
func UpdateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(JobRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateJobFields(reqData, false); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobUpdate", reqData)
		return c.Next()
	}
}

// JobID validates the :id route parameter
func JobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Job ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Job ID!", nil)
		}

		c.Locals("jobID", id)
		return c.Next()
	}
}

// JobApplicationID validates the :id route parameter of an application
func JobApplicationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Application ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Application ID!", nil)
		}

		c.Locals("jobApplicationID", id)
		return c.Next()
	}
}

// JobList validates pagination query parameters
func JobList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJobList", reqData)
		return c.Next()
	}
}

// ApplicationStatus validates the company's status update payload
func ApplicationStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		switch reqData.Status {
		case models.JobApplicationStatusShortlisted,
			models.JobApplicationStatusInterviewing,
			models.JobApplicationStatusOffered,
			models.JobApplicationStatusRejected:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of shortlisted, interviewing, offered, rejected!",
			})
		}

		c.Locals("validatedJobStatus", reqData)
		return c.Next()
	}
}
