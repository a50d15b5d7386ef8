package studentRoutes

import (
	studentController "careerbridge/controllers/student"
	"careerbridge/middleware"
	"careerbridge/models"
	studentValidator "careerbridge/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up student profile and document routes
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/api/students", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent))

	studentGroup.Get("/profile", studentController.GetProfile)
	studentGroup.Put("/profile", studentValidator.UpdateProfile(), studentController.UpdateProfile)
	studentGroup.Post("/transcript", studentValidator.UploadTranscript(), studentController.UploadTranscript)
	studentGroup.Post("/certificates", studentValidator.AddCertificate(), studentController.AddCertificate)
}
