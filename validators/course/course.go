package courseValidator

import (
	"careerbridge/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the validated create/update payload
type CourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tuition     *float64 `json:"tuition"`
	Seats       *int     `json:"seats"`
	Deadline    string   `json:"deadline"` // RFC3339
	Requirements *struct {
		Subjects  []string          `json:"subjects"`
		MinGrades map[string]string `json:"minGrades"`
	} `json:"requirements"`
}

// EligibilityCheckRequest asks whether the student qualifies for a course
type EligibilityCheckRequest struct {
	CourseID uint `json:"courseId"`
}

// ParsedDeadline converts the deadline string; empty means no deadline
func (r *CourseRequest) ParsedDeadline() (*time.Time, error) {
	if strings.TrimSpace(r.Deadline) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, r.Deadline)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Tuition != nil && *reqData.Tuition < 0 {
			errors["tuition"] = "Tuition cannot be negative!"
		}

		if reqData.Seats != nil && *reqData.Seats < 0 {
			errors["seats"] = "Seats cannot be negative!"
		}

		if _, err := reqData.ParsedDeadline(); err != nil {
			errors["deadline"] = "Deadline must be an RFC3339 timestamp!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware; all fields optional
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Tuition != nil && *reqData.Tuition < 0 {
			errors["tuition"] = "Tuition cannot be negative!"
		}

		if reqData.Seats != nil && *reqData.Seats < 0 {
			errors["seats"] = "Seats cannot be negative!"
		}

		if _, err := reqData.ParsedDeadline(); err != nil {
			errors["deadline"] = "Deadline must be an RFC3339 timestamp!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseList validates pagination query parameters
func CourseList() fiber.Handler {
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

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// EligibilityCheck validator middleware
func EligibilityCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EligibilityCheckRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}

		c.Locals("validatedEligibility", reqData)
		return c.Next()
	}
}
