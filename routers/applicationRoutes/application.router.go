package applicationRoutes

import (
	applicationController "careerbridge/controllers/application"
	"careerbridge/middleware"
	"careerbridge/models"
	applicationValidator "careerbridge/validators/application"
	courseValidator "careerbridge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupApplicationRoutes sets up the course application lifecycle routes
func SetupApplicationRoutes(app *fiber.App) {
	applicationGroup := app.Group("/api/applications", middleware.JWTMiddleware)

	// Student side
	applicationGroup.Post("/", middleware.RequireRole(models.RoleStudent), applicationValidator.Submit(), applicationController.SubmitApplication)
	applicationGroup.Get("/", middleware.RequireRole(models.RoleStudent), applicationController.GetMyApplications)
	applicationGroup.Post("/:id/accept", middleware.RequireRole(models.RoleStudent), applicationValidator.ApplicationID(), applicationController.AcceptOffer)
	applicationGroup.Post("/:id/decline", middleware.RequireRole(models.RoleStudent), applicationValidator.ApplicationID(), applicationController.DeclineOffer)
	applicationGroup.Delete("/:id", middleware.RequireRole(models.RoleStudent), applicationValidator.ApplicationID(), applicationController.DeleteApplication)

	// Institution side
	applicationGroup.Get("/course/:id", middleware.RequireRole(models.RoleInstitution), courseValidator.CourseID(), applicationController.GetCourseApplications)
	applicationGroup.Post("/course/:id/publish", middleware.RequireRole(models.RoleInstitution), courseValidator.CourseID(), applicationController.PublishAdmissions)
	applicationGroup.Post("/:id/decide", middleware.RequireRole(models.RoleInstitution), applicationValidator.ApplicationID(), applicationValidator.Decide(), applicationController.DecideApplication)
}
