package applicationController

import (
	"careerbridge/database"
	"careerbridge/matching"
	"careerbridge/middleware"
	"careerbridge/models"
	"careerbridge/utils"
	applicationValidator "careerbridge/validators/application"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DecideApplication sets the institution's decision on a pending application
func DecideApplication(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	applicationID := c.Locals("applicationID").(int)

	reqData, ok := c.Locals("validatedDecision").(*applicationValidator.DecideRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var application models.Application
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", applicationID, false).First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if application.InstitutionID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This application does not belong to your institution!", nil)
	}

	if application.Status != models.ApplicationStatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending applications can be decided!", nil)
	}

	application.Status = reqData.Status
	application.StatusReason = reqData.Reason

	if err := database.Database.Db.Save(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update application!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Decision recorded successfully!", application)
}

// PublishAdmissions flips admissionPublished for every decided application of
// a course and notifies the admitted students.
func PublishAdmissions(c *fiber.Ctx) error {
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

	decided := []string{
		models.ApplicationStatusAdmitted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusWaitlisted,
	}

	result := database.Database.Db.Model(&models.Application{}).
		Where("course_id = ? AND is_deleted = ? AND status IN ?", courseID, false, decided).
		Update("admission_published", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish admissions!", nil)
	}

	// Best-effort notifications for admitted students
	var admitted []models.Application
	if err := database.Database.Db.Where("course_id = ? AND status = ? AND is_deleted = ?", courseID, models.ApplicationStatusAdmitted, false).
		Preload("Student").
		Find(&admitted).Error; err == nil {
		for _, application := range admitted {
			utils.Notify(application.StudentID, "Admission decision published",
				fmt.Sprintf("You have been admitted to %s. Accept or decline the offer.", course.Title),
				models.NotificationSeveritySuccess,
				fmt.Sprintf("/applications/%d", application.ID))
			go utils.SendAdmissionDecisionEmail(application.Student.Email, application.Student.Name, course.Title, application.Status)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admissions published successfully!", fiber.Map{
		"published": result.RowsAffected,
	})
}

// AcceptOffer commits the student's acceptance: the chosen offer becomes
// accepted and every other admitted offer is rejected in one transaction.
// Waitlist promotion for the vacated courses then runs best-effort.
func AcceptOffer(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	applicationID := c.Locals("applicationID").(int)

	var target models.Application
	if err := database.Database.Db.Where("id = ? AND student_id = ? AND is_deleted = ?", applicationID, userId, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if !target.AdmissionPublished {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Admission decision has not been published yet!", nil)
	}

	vacated, err := applyAccept(database.Database.Db, userId, uint(applicationID))
	if err == matching.ErrNotAdmitted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only admitted offers can be accepted!", nil)
	}
	if err == matching.ErrAlreadyAccepted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already accepted an offer!", nil)
	}
	if err != nil {
		log.Printf("Error accepting offer %d: %v", applicationID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept offer!", nil)
	}

	utils.Notify(userId, "Offer accepted", "Congratulations, your seat is confirmed.", models.NotificationSeveritySuccess, "")

	// Vacated seats go to the waitlist; failures are logged, never surfaced
	for _, courseID := range vacated {
		if err := promoteFromWaitlist(database.Database.Db, courseID); err != nil {
			log.Printf("Waitlist promotion failed for course %d: %v", courseID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Offer accepted successfully!", nil)
}

// DeclineOffer rejects the student's own published admitted offer and frees
// the seat for the waitlist.
func DeclineOffer(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	applicationID := c.Locals("applicationID").(int)

	var application models.Application
	if err := database.Database.Db.Where("id = ? AND student_id = ? AND is_deleted = ?", applicationID, userId, false).First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if application.Status != models.ApplicationStatusAdmitted || !application.AdmissionPublished {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only published admitted offers can be declined!", nil)
	}

	application.Status = models.ApplicationStatusRejected
	application.StatusReason = "Declined by student"
	if err := database.Database.Db.Save(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to decline offer!", nil)
	}

	if err := promoteFromWaitlist(database.Database.Db, application.CourseID); err != nil {
		log.Printf("Waitlist promotion failed for course %d: %v", application.CourseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Offer declined successfully!", nil)
}

// applyAccept loads every application of the student, builds the accept plan
// and commits all of its mutations atomically. Returns the vacated course
// ids for waitlist promotion.
func applyAccept(db *gorm.DB, studentID, targetID uint) ([]uint, error) {
	var vacated []uint

	err := db.Transaction(func(tx *gorm.DB) error {
		var apps []models.Application
		if err := tx.Where("student_id = ? AND is_deleted = ?", studentID, false).Find(&apps).Error; err != nil {
			return err
		}

		records := make([]matching.ApplicationRecord, 0, len(apps))
		for _, app := range apps {
			records = append(records, matching.ApplicationRecord{
				ID:       app.ID,
				CourseID: app.CourseID,
				Status:   app.Status,
			})
		}

		plan, err := matching.BuildAcceptPlan(targetID, records)
		if err != nil {
			return err
		}

		for _, m := range plan.Mutations {
			updates := map[string]interface{}{"status": m.Status}
			if m.Reason != "" {
				updates["status_reason"] = m.Reason
			}
			if err := tx.Model(&models.Application{}).Where("id = ?", m.ApplicationID).Updates(updates).Error; err != nil {
				return err
			}
		}

		vacated = plan.VacatedCourses
		return nil
	})

	return vacated, err
}

// promoteFromWaitlist admits the earliest-submitted waitlisted applicant of a
// course. A course without a waitlist is not an error.
func promoteFromWaitlist(db *gorm.DB, courseID uint) error {
	var promoted *models.Application

	err := db.Transaction(func(tx *gorm.DB) error {
		var application models.Application
		err := tx.Where("course_id = ? AND status = ? AND is_deleted = ?", courseID, models.ApplicationStatusWaitlisted, false).
			Order("applied_at asc").
			First(&application).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":                 models.ApplicationStatusAdmitted,
			"promoted_from_waitlist": true,
			"admission_published":    true,
		}
		if err := tx.Model(&application).Updates(updates).Error; err != nil {
			return err
		}

		promoted = &application
		return nil
	})
	if err != nil || promoted == nil {
		return err
	}

	var course models.Course
	courseTitle := ""
	if err := db.Where("id = ?", courseID).First(&course).Error; err == nil {
		courseTitle = course.Title
	}

	utils.Notify(promoted.StudentID, "Admitted from waitlist",
		fmt.Sprintf("A seat opened up and you have been admitted to %s.", courseTitle),
		models.NotificationSeveritySuccess,
		fmt.Sprintf("/applications/%d", promoted.ID))

	var student models.User
	if err := db.Where("id = ?", promoted.StudentID).First(&student).Error; err == nil {
		go utils.SendWaitlistPromotionEmail(student.Email, student.Name, courseTitle)
	}

	return nil
}
