package applicationValidator

import (
	"careerbridge/middleware"
	"careerbridge/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubmitRequest is the validated application submission payload
type SubmitRequest struct {
	CourseID uint `json:"courseId"`
}

// DecideRequest is the institution's decision on a pending application
type DecideRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course ID is required!",
			})
		}

		c.Locals("validatedSubmit", reqData)
		return c.Next()
	}
}

// ApplicationID validates the :id route parameter
func ApplicationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Application ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Application ID!", nil)
		}

		c.Locals("applicationID", id)
		return c.Next()
	}
}

// Decide validator middleware; only institution-driven transitions pass
func Decide() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DecideRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		switch reqData.Status {
		case models.ApplicationStatusAdmitted, models.ApplicationStatusRejected, models.ApplicationStatusWaitlisted:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of admitted, rejected, waitlisted!",
			})
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}
