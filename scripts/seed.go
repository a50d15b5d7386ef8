package main

import (
	"careerbridge/config"
	"careerbridge/database"
	"careerbridge/models"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds a demo dataset: one account per role, two courses with requirements
// and one job posting. Safe to re-run, existing emails are skipped.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	hash, err := bcrypt.GenerateFromPassword([]byte("Password@123"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	password := string(hash)

	student := seedUser(models.User{Name: "Asha Student", Email: "student@careerbridge.local", Role: models.RoleStudent, Password: password})
	institution := seedUser(models.User{Name: "Crestview University", Email: "admissions@careerbridge.local", Role: models.RoleInstitution, Password: password})
	company := seedUser(models.User{Name: "Northwind Labs", Email: "hiring@careerbridge.local", Role: models.RoleCompany, Password: password})
	seedUser(models.User{Name: "Platform Admin", Email: "admin@careerbridge.local", Role: models.RoleAdmin, Password: password})

	if student != nil {
		profile := models.StudentProfile{
			UserID:         student.ID,
			City:           "Nairobi",
			AcademicScore:  78,
			WorkExperience: 1.5,
			Skills:         datatypes.NewJSONSlice([]string{"Go", "SQL", "Communication"}),
			SubjectGrades: datatypes.NewJSONSlice([]models.SubjectGrade{
				{Subject: "Math", Grade: "A"},
				{Subject: "English", Grade: "B"},
				{Subject: "Science", Grade: "B"},
			}),
			StudyCompleted: true,
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("Skipping student profile: %v", err)
		}
	}

	if institution != nil {
		inst := models.InstitutionProfile{UserID: institution.ID, InstitutionName: "Crestview University", City: "Nairobi"}
		if err := db.Create(&inst).Error; err != nil {
			log.Printf("Skipping institution profile: %v", err)
		}

		deadline := time.Now().AddDate(0, 2, 0)
		courses := []models.Course{
			{
				InstitutionID: institution.ID,
				Title:         "BSc Computer Science",
				Description:   "Four-year program with a software engineering focus.",
				Tuition:       120000,
				Seats:         40,
				Deadline:      &deadline,
				Requirements: datatypes.NewJSONType(models.CourseRequirements{
					Subjects:  []string{"Math", "English"},
					MinGrades: map[string]string{"Math": "B", "English": "C"},
				}),
			},
			{
				InstitutionID: institution.ID,
				Title:         "Diploma in Data Analytics",
				Description:   "One-year applied analytics diploma.",
				Tuition:       60000,
				Seats:         25,
				Requirements: datatypes.NewJSONType(models.CourseRequirements{
					Subjects:  []string{"Math"},
					MinGrades: map[string]string{"Math": "C"},
				}),
			},
		}
		for i := range courses {
			if err := db.Create(&courses[i]).Error; err != nil {
				log.Printf("Skipping course %q: %v", courses[i].Title, err)
			}
		}
	}

	if company != nil {
		comp := models.CompanyProfile{UserID: company.ID, CompanyName: "Northwind Labs", Industry: "Software", City: "Nairobi"}
		if err := db.Create(&comp).Error; err != nil {
			log.Printf("Skipping company profile: %v", err)
		}

		deadline := time.Now().AddDate(0, 1, 0)
		job := models.Job{
			CompanyID:         company.ID,
			Title:             "Junior Backend Engineer",
			Description:       "Build and maintain REST services.",
			MinAcademicScore:  60,
			MinWorkExperience: 1,
			RequiredSkills:    datatypes.NewJSONSlice([]string{"Go", "SQL"}),
			Deadline:          &deadline,
			IsActive:          true,
		}
		if err := db.Create(&job).Error; err != nil {
			log.Printf("Skipping job %q: %v", job.Title, err)
		}
	}

	log.Println("Seed complete")
}

// seedUser creates the user unless the email already exists. Returns nil when
// the account was already there so dependent rows are not duplicated.
func seedUser(user models.User) *models.User {
	db := database.Database.Db

	var existing int64
	db.Model(&models.User{}).Where("email = ?", user.Email).Count(&existing)
	if existing > 0 {
		log.Printf("User %s already exists, skipping", user.Email)
		return nil
	}

	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to seed user %s: %v", user.Email, err)
	}
	log.Printf("Seeded %s user %s", user.Role, user.Email)
	return &user
}
