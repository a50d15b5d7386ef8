package main

import (
	"careerbridge/config"
	"careerbridge/database"
	applicationRoutes "careerbridge/routers/applicationRoutes"
	authRoutes "careerbridge/routers/authRoutes"
	courseRoutes "careerbridge/routers/courseRoutes"
	jobRoutes "careerbridge/routers/jobRoutes"
	notificationRoutes "careerbridge/routers/notificationRoutes"
	studentRoutes "careerbridge/routers/studentRoutes"
	"careerbridge/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded transcripts/certificates
	app.Static("/uploads", config.AppConfig.UploadDir)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": true, "message": "ok"})
	})

	authRoutes.SetupAuthRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)

	// Daily sweep closing postings past their deadline
	utils.InitializeDeadlineScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
