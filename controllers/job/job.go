package jobController

import (
	"careerbridge/database"
	"careerbridge/middleware"
	"careerbridge/models"
	jobValidator "careerbridge/validators/job"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateJob creates a posting owned by the authenticated company
func CreateJob(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedJob").(*jobValidator.JobRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	deadline, _ := reqData.ParsedDeadline()

	job := models.Job{
		CompanyID:   userId,
		Title:       reqData.Title,
		Description: reqData.Description,
		Deadline:    deadline,
		IsActive:    true,
	}
	if reqData.MinAcademicScore != nil {
		job.MinAcademicScore = *reqData.MinAcademicScore
	}
	if reqData.MinWorkExperience != nil {
		job.MinWorkExperience = *reqData.MinWorkExperience
	}
	if reqData.RequiredCertificates != nil {
		job.RequiredCertificates = datatypes.NewJSONSlice(*reqData.RequiredCertificates)
	}
	if reqData.RequiredSkills != nil {
		job.RequiredSkills = datatypes.NewJSONSlice(*reqData.RequiredSkills)
	}

	if err := database.Database.Db.Create(&job).Error; err != nil {
		log.Printf("Error creating job: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job created successfully!", job)
}

// UpdateJob updates a posting; only the owning company may touch it
func UpdateJob(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedJobUpdate").(*jobValidator.JobRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		job.Title = reqData.Title
	}
	if reqData.Description != "" {
		job.Description = reqData.Description
	}
	if reqData.MinAcademicScore != nil {
		job.MinAcademicScore = *reqData.MinAcademicScore
	}
	if reqData.MinWorkExperience != nil {
		job.MinWorkExperience = *reqData.MinWorkExperience
	}
	if reqData.RequiredCertificates != nil {
		job.RequiredCertificates = datatypes.NewJSONSlice(*reqData.RequiredCertificates)
	}
	if reqData.RequiredSkills != nil {
		job.RequiredSkills = datatypes.NewJSONSlice(*reqData.RequiredSkills)
	}
	if deadline, _ := reqData.ParsedDeadline(); deadline != nil {
		job.Deadline = deadline
	}
	if reqData.IsActive != nil {
		job.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&job).Error; err != nil {
		log.Printf("Error updating job: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job updated successfully!", job)
}

// DeleteJob soft-deletes a posting
func DeleteJob(c *fiber.Ctx) error {
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

	job.IsDeleted = true
	if err := database.Database.Db.Save(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete job!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job deleted successfully!", nil)
}

// GetAllJobs lists active postings whose deadline has not passed
func GetAllJobs(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedJobList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Job{}).
		Where("is_deleted = ? AND is_active = ?", false, true).
		Where("deadline IS NULL OR deadline > ?", time.Now())

	var total int64
	db.Count(&total)

	var jobs []models.Job
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&jobs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch jobs!", nil)
	}

	response := map[string]interface{}{
		"jobs": jobs,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Jobs fetched successfully!", response)
}

// GetJobDetails returns one posting
func GetJobDetails(c *fiber.Ctx) error {
	jobID := c.Locals("jobID").(int)

	var job models.Job
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", jobID, false).First(&job).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job details.", job)
}
