package courseRoutes

import (
	courseController "careerbridge/controllers/course"
	"careerbridge/middleware"
	"careerbridge/models"
	courseValidator "careerbridge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course listing, management and eligibility routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Public listing and details
	courseGroup.Get("/", middleware.JWTMiddleware, courseValidator.CourseList(), courseController.GetAllCourses)
	courseGroup.Get("/mine", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstitution), courseController.ListOwnCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.GetCourseDetails)

	// Institution management
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstitution), courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstitution), courseValidator.CourseID(), courseValidator.UpdateCourse(), courseController.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstitution), courseValidator.CourseID(), courseController.DeleteCourse)

	// Eligibility check
	app.Post("/api/eligibility/check", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), courseValidator.EligibilityCheck(), courseController.CheckEligibility)
}
