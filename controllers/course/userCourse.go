package courseController

import (
	"careerbridge/database"
	"careerbridge/matching"
	"careerbridge/middleware"
	"careerbridge/models"
	courseValidator "careerbridge/validators/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists active courses whose deadline has not passed
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{}).
		Where("is_deleted = ? AND status = ?", false, "ACTIVE").
		Where("deadline IS NULL OR deadline > ?", time.Now())

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns one course
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details.", course)
}

// CheckEligibility evaluates the authenticated student against a course's
// subject requirements.
func CheckEligibility(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEligibility").(*courseValidator.EligibilityCheckRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var profile models.StudentProfile
	if err := database.Database.Db.Where("user_id = ?", userId).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	eligible := matching.IsEligible(courseRequirements(&course), studentGrades(&profile))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Eligibility evaluated.", fiber.Map{
		"courseId": course.ID,
		"eligible": eligible,
	})
}

// courseRequirements converts the stored JSON requirements for the evaluator.
// Returns nil when the course carries none, which fails closed.
func courseRequirements(course *models.Course) *matching.Requirements {
	req := course.Requirements.Data()
	if req.Subjects == nil && req.MinGrades == nil {
		return nil
	}
	return &matching.Requirements{
		Subjects:  req.Subjects,
		MinGrades: req.MinGrades,
	}
}

func studentGrades(profile *models.StudentProfile) []matching.SubjectGrade {
	grades := make([]matching.SubjectGrade, 0, len(profile.SubjectGrades))
	for _, sg := range profile.SubjectGrades {
		grades = append(grades, matching.SubjectGrade{Subject: sg.Subject, Grade: sg.Grade})
	}
	return grades
}
