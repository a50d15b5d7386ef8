package jobController

import (
	"careerbridge/database"
	"careerbridge/matching"
	"careerbridge/middleware"
	"careerbridge/models"
	"careerbridge/utils"
	jobValidator "careerbridge/validators/job"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ApplyToJob files a job application for the authenticated student. The
// match score is computed at submission time and stored on the record.
func ApplyToJob(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(int)

	var job models.Job
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_active = ?", jobID, false, true).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found or no longer active!", nil)
	}

	if job.Deadline != nil && job.Deadline.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Application deadline has passed!", nil)
	}

	// Check if student already applied
	var existing models.JobApplication
	if err := database.Database.Db.Where("student_id = ? AND job_id = ? AND is_deleted = ?", userId, jobID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already applied to this job!", nil)
	}

	var profile models.StudentProfile
	if err := database.Database.Db.Where("user_id = ?", userId).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	score := matching.ScoreJobMatch(candidateFromProfile(&profile), jobRequirements(&job))

	application := models.JobApplication{
		StudentID:      userId,
		JobID:          job.ID,
		MatchScore:     score,
		InterviewReady: matching.InterviewReady(score),
		Status:         models.JobApplicationStatusPending,
		AppliedAt:      time.Now(),
	}

	// Application insert and applicant counter move together
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).Where("id = ?", job.ID).
			UpdateColumn("applicant_count", gorm.Expr("applicant_count + 1")).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply to job!", nil)
	}

	utils.Notify(userId, "Job application sent",
		fmt.Sprintf("You applied to %s with a match score of %d.", job.Title, score),
		models.NotificationSeverityInfo,
		fmt.Sprintf("/jobs/%d", job.ID))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted successfully!", application)
}

// GetMyJobApplications lists the student's own job applications
func GetMyJobApplications(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var applications []models.JobApplication
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", userId, false).
		Preload("Job").
		Order("applied_at desc").
		Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", applications)
}

// GetJobApplicants lists applicants of a posting the company owns, best
// match first.
func GetJobApplicants(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	jobID := c.Locals("jobID").(int)

	var job models.Job
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", jobID, false).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	if job.CompanyID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this job!", nil)
	}

	var applications []models.JobApplication
	if err := database.Database.Db.Where("job_id = ? AND is_deleted = ?", jobID, false).
		Preload("Student").
		Order("match_score desc").
		Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applicants!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applicants fetched successfully!", applications)
}

// SetApplicationStatus lets the owning company move an applicant through its
// pipeline.
func SetApplicationStatus(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	applicationID := c.Locals("jobApplicationID").(int)

	reqData, ok := c.Locals("validatedJobStatus").(*jobValidator.StatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var application models.JobApplication
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", applicationID, false).Preload("Job").First(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if application.Job.CompanyID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This application does not belong to your job!", nil)
	}

	application.Status = reqData.Status
	if err := database.Database.Db.Save(&application).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update application!", nil)
	}

	utils.Notify(application.StudentID, "Application status updated",
		fmt.Sprintf("Your application for %s is now %s.", application.Job.Title, application.Status),
		models.NotificationSeverityInfo,
		fmt.Sprintf("/jobs/%d", application.JobID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Status updated successfully!", application)
}

// candidateFromProfile maps the stored student profile into scorer input
func candidateFromProfile(profile *models.StudentProfile) matching.Candidate {
	certificates := make([]string, 0, len(profile.Certificates))
	for _, cert := range profile.Certificates {
		certificates = append(certificates, cert.Name)
	}

	return matching.Candidate{
		AcademicScore:  profile.AcademicScore,
		WorkExperience: profile.WorkExperience,
		Certificates:   certificates,
		Skills:         profile.Skills,
		HasTranscript:  profile.HasTranscript,
	}
}

func jobRequirements(job *models.Job) matching.JobRequirements {
	return matching.JobRequirements{
		MinAcademicScore:     job.MinAcademicScore,
		MinWorkExperience:    job.MinWorkExperience,
		RequiredCertificates: job.RequiredCertificates,
		RequiredSkills:       job.RequiredSkills,
	}
}
