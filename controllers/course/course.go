package courseController

import (
	"careerbridge/database"
	"careerbridge/middleware"
	"careerbridge/models"
	courseValidator "careerbridge/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateCourse creates a new course owned by the authenticated institution
func CreateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	deadline, _ := reqData.ParsedDeadline()

	course := models.Course{
		InstitutionID: userId,
		Title:         reqData.Title,
		Description:   reqData.Description,
		Deadline:      deadline,
		Status:        "ACTIVE",
	}
	if reqData.Tuition != nil {
		course.Tuition = *reqData.Tuition
	}
	if reqData.Seats != nil {
		course.Seats = *reqData.Seats
	}
	if reqData.Requirements != nil {
		course.Requirements = datatypes.NewJSONType(models.CourseRequirements{
			Subjects:  reqData.Requirements.Subjects,
			MinGrades: reqData.Requirements.MinGrades,
		})
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates a course; only the owning institution may touch it
func UpdateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstitutionID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Tuition != nil {
		course.Tuition = *reqData.Tuition
	}
	if reqData.Seats != nil {
		course.Seats = *reqData.Seats
	}
	if deadline, _ := reqData.ParsedDeadline(); deadline != nil {
		course.Deadline = deadline
	}
	if reqData.Requirements != nil {
		course.Requirements = datatypes.NewJSONType(models.CourseRequirements{
			Subjects:  reqData.Requirements.Subjects,
			MinGrades: reqData.Requirements.MinGrades,
		})
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft-deletes a course; only the owning institution may
func DeleteCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstitutionID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// ListOwnCourses lists every course of the authenticated institution
func ListOwnCourses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.Where("institution_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}
