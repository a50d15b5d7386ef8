package applicationController

import (
	"careerbridge/database"
	"careerbridge/middleware"
	"careerbridge/models"
	"careerbridge/utils"
	applicationValidator "careerbridge/validators/application"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	errAlreadyApplied  = errors.New("already applied to this course")
	errInstitutionFull = errors.New("application limit for this institution reached")
)

// SubmitApplication files a course application for the authenticated student.
// The duplicate and per-institution capacity checks run inside the insert
// transaction so a parallel submission cannot slip past them.
func SubmitApplication(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmit").(*applicationValidator.SubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", reqData.CourseID, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	if course.Deadline != nil && course.Deadline.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Application deadline has passed!", nil)
	}

	application, err := createApplication(database.Database.Db, userId, &course)

	if errors.Is(err, errAlreadyApplied) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already applied to this course!", nil)
	}
	if errors.Is(err, errInstitutionFull) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot hold more than 2 applications at this institution!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
	}

	utils.Notify(userId, "Application received",
		fmt.Sprintf("Your application to %s has been received.", course.Title),
		models.NotificationSeverityInfo,
		fmt.Sprintf("/applications/%d", application.ID))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// createApplication inserts the application after re-checking the duplicate
// and per-institution limits inside the transaction, so a parallel
// submission cannot slip past them.
func createApplication(db *gorm.DB, studentID uint, course *models.Course) (models.Application, error) {
	application := models.Application{
		StudentID:     studentID,
		CourseID:      course.ID,
		InstitutionID: course.InstitutionID,
		Status:        models.ApplicationStatusPending,
		AppliedAt:     time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// One application per course
		var duplicates int64
		if err := tx.Model(&models.Application{}).
			Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, course.ID, false).
			Count(&duplicates).Error; err != nil {
			return err
		}
		if duplicates > 0 {
			return errAlreadyApplied
		}

		// At most two applications per institution
		var atInstitution int64
		if err := tx.Model(&models.Application{}).
			Where("student_id = ? AND institution_id = ? AND is_deleted = ?", studentID, course.InstitutionID, false).
			Count(&atInstitution).Error; err != nil {
			return err
		}
		if atInstitution >= models.MaxApplicationsPerInstitution {
			return errInstitutionFull
		}

		return tx.Create(&application).Error
	})

	return application, err
}

// GetMyApplications lists the student's own applications
func GetMyApplications(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var applications []models.Application
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", userId, false).
		Preload("Course").
		Order("applied_at desc").
		Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

// GetCourseApplications lists applications for a course the institution owns
func GetCourseApplications(c *fiber.Ctx) error {
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

	var applications []models.Application
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Preload("Student").
		Order("applied_at asc").
		Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

// DeleteApplication lets a student withdraw an application while pending
func DeleteApplication(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	applicationID := c.Locals("applicationID").(int)

	var application models.Application
	if err := database.Database.Db.Where("id = ? AND student_id = ? AND is_deleted = ?", applicationID, userId, false).First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if application.Status != models.ApplicationStatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending applications can be withdrawn!", nil)
	}

	application.IsDeleted = true
	if err := database.Database.Db.Save(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to withdraw application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application withdrawn successfully!", nil)
}
