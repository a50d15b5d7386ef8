package notificationRoutes

import (
	notificationController "careerbridge/controllers/notification"
	"careerbridge/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up the notification inbox routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/api/notifications", middleware.JWTMiddleware)

	notificationGroup.Get("/", notificationController.GetNotifications)
	notificationGroup.Post("/:id/read", notificationController.MarkRead)
}
