package jobRoutes

import (
	jobController "careerbridge/controllers/job"
	"careerbridge/middleware"
	"careerbridge/models"
	jobValidator "careerbridge/validators/job"

	"github.com/gofiber/fiber/v2"
)

// SetupJobRoutes sets up job posting and job application routes
func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/api/jobs")

	// Public listing and details
	jobGroup.Get("/", middleware.JWTMiddleware, jobValidator.JobList(), jobController.GetAllJobs)
	jobGroup.Get("/mine", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), jobController.GetMyJobApplications)
	jobGroup.Get("/:id", middleware.JWTMiddleware, jobValidator.JobID(), jobController.GetJobDetails)

	// Company management
	jobGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCompany), jobValidator.CreateJob(), jobController.CreateJob)
	jobGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCompany), jobValidator.JobID(), jobValidator.UpdateJob(), jobController.UpdateJob)
	jobGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCompany), jobValidator.JobID(), jobController.DeleteJob)

	// Applications
	jobGroup.Post("/:id/apply", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), jobValidator.JobID(), jobController.ApplyToJob)
	jobGroup.Get("/:id/applicants", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCompany), jobValidator.JobID(), jobController.GetJobApplicants)

	app.Post("/api/job-applications/:id/status", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCompany), jobValidator.JobApplicationID(), jobValidator.ApplicationStatus(), jobController.SetApplicationStatus)
}
