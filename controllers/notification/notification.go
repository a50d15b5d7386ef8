package notificationController

import (
	"careerbridge/database"
	"careerbridge/middleware"
	"careerbridge/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications lists the user's notifications, newest first
func GetNotifications(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var notifications []models.Notification
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").
		Limit(100).
		Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	var unread int64
	database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND is_deleted = ?", userId, false, false).
		Count(&unread)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkRead flags one notification as read
func MarkRead(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	idStr := strings.TrimSpace(c.Params("id"))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Notification ID!", nil)
	}

	var notification models.Notification
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", id, userId, false).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	notification.IsRead = true
	if err := database.Database.Db.Save(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read.", notification)
}
