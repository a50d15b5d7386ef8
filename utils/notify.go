package utils

import (
	"careerbridge/config"
	"careerbridge/database"
	"careerbridge/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notify records a user-facing event. It is fire-and-forget: failures are
// logged and never surfaced to the caller. When NOTIFY_WEBHOOK_URL is set the
// notification is also mirrored to that endpoint asynchronously.
func Notify(userID uint, title, message, severity, actionURL string) {
	notification := models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Severity:  severity,
		ActionURL: actionURL,
	}

	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("[NOTIFY] Failed to save notification for user %d: %v", userID, err)
		return
	}

	webhookURL := config.AppConfig.NotifyWebhookURL
	if webhookURL == "" {
		return
	}

	go func(n models.Notification) {
		client := resty.New().SetTimeout(10 * time.Second)
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"userId":    n.UserID,
				"title":     n.Title,
				"message":   n.Message,
				"severity":  n.Severity,
				"actionUrl": n.ActionURL,
			}).
			Post(webhookURL)
		if err != nil {
			log.Printf("[NOTIFY] Webhook delivery failed for user %d: %v", n.UserID, err)
			return
		}
		if resp.IsError() {
			log.Printf("[NOTIFY] Webhook responded %d for user %d", resp.StatusCode(), n.UserID)
		}
	}(notification)
}
