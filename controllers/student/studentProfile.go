package studentController

import (
	"careerbridge/config"
	"careerbridge/database"
	"careerbridge/middleware"
	"careerbridge/models"
	"careerbridge/utils"
	studentValidator "careerbridge/validators/student"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// loadOwnProfile fetches the student profile for the authenticated user
func loadOwnProfile(c *fiber.Ctx) (*models.StudentProfile, error) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var profile models.StudentProfile
	if err := database.Database.Db.Where("user_id = ?", userId).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func GetProfile(c *fiber.Ctx) error {
	profile, err := loadOwnProfile(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student profile.", profile)
}

func UpdateProfile(c *fiber.Ctx) error {
	profile, err := loadOwnProfile(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*studentValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Address != nil {
		profile.Address = *reqData.Address
	}
	if reqData.City != nil {
		profile.City = *reqData.City
	}
	if reqData.AcademicScore != nil {
		profile.AcademicScore = *reqData.AcademicScore
	}
	if reqData.WorkExperience != nil {
		profile.WorkExperience = *reqData.WorkExperience
	}
	if reqData.Skills != nil {
		profile.Skills = datatypes.NewJSONSlice(*reqData.Skills)
	}
	if reqData.SubjectGrades != nil {
		grades := make([]models.SubjectGrade, 0, len(*reqData.SubjectGrades))
		for _, sg := range *reqData.SubjectGrades {
			grades = append(grades, models.SubjectGrade{Subject: sg.Subject, Grade: sg.Grade})
		}
		profile.SubjectGrades = datatypes.NewJSONSlice(grades)
	}
	if reqData.StudyCompleted != nil {
		profile.StudyCompleted = *reqData.StudyCompleted
	}

	if err := database.Database.Db.Save(profile).Error; err != nil {
		log.Printf("Error updating student profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}

// UploadTranscript stores the base64 PDF and flips the hasTranscript flag
func UploadTranscript(c *fiber.Ctx) error {
	profile, err := loadOwnProfile(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	reqData, ok := c.Locals("validatedTranscript").(*studentValidator.UploadTranscriptRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	filePath, err := utils.SavePDFDataURI(reqData.Document, config.AppConfig.UploadDir)
	if err == utils.ErrNotPDFDataURI || err == utils.ErrPDFTooLarge {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	if err != nil {
		log.Printf("Error storing transcript: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store transcript!", nil)
	}

	profile.TranscriptPath = filePath
	profile.HasTranscript = true

	if err := database.Database.Db.Save(profile).Error; err != nil {
		log.Printf("Error saving transcript reference: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save transcript!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transcript uploaded successfully!", fiber.Map{
		"url": utils.GetFileURL(filePath),
	})
}

// AddCertificate appends a certificate entry, optionally with its PDF
func AddCertificate(c *fiber.Ctx) error {
	profile, err := loadOwnProfile(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	reqData, ok := c.Locals("validatedCertificate").(*studentValidator.AddCertificateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	certificate := models.Certificate{
		Name:   reqData.Name,
		Issuer: reqData.Issuer,
	}

	if reqData.Document != "" {
		filePath, err := utils.SavePDFDataURI(reqData.Document, config.AppConfig.UploadDir)
		if err == utils.ErrNotPDFDataURI || err == utils.ErrPDFTooLarge {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		if err != nil {
			log.Printf("Error storing certificate: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store certificate!", nil)
		}
		certificate.FilePath = filePath
	}

	profile.Certificates = append(profile.Certificates, certificate)

	if err := database.Database.Db.Save(profile).Error; err != nil {
		log.Printf("Error saving certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate added successfully!", profile.Certificates)
}
