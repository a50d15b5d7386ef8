package utils

import (
	"careerbridge/database"
	"careerbridge/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeDeadlineScheduler sets up the daily sweep that closes postings
// whose deadline has passed.
func InitializeDeadlineScheduler() {
	log.Println("[DEADLINE-SCHEDULER] Initializing deadline scheduler...")

	c := cron.New()

	// Run daily at midnight
	c.AddFunc("0 0 * * *", func() {
		log.Println("[DEADLINE-SCHEDULER] Running daily deadline sweep...")
		CloseExpiredJobs()
		CloseExpiredCourses()
	})

	c.Start()
	log.Println("[DEADLINE-SCHEDULER] Deadline scheduler started - runs daily at midnight")
}

// CloseExpiredJobs deactivates job postings whose deadline has passed
func CloseExpiredJobs() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Job{}).
		Where("is_active = ? AND deadline IS NOT NULL AND deadline < ?", true, now).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("[DEADLINE-SCHEDULER] Error closing expired jobs: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[DEADLINE-SCHEDULER] Deactivated %d expired jobs", result.RowsAffected)
	}
}

// CloseExpiredCourses closes courses whose application deadline has passed
func CloseExpiredCourses() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Course{}).
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", "ACTIVE", now).
		Update("status", "CLOSED")
	if result.Error != nil {
		log.Printf("[DEADLINE-SCHEDULER] Error closing expired courses: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[DEADLINE-SCHEDULER] Closed %d expired courses", result.RowsAffected)
	}
}
