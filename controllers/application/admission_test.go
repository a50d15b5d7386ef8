package applicationController

import (
	"careerbridge/config"
	"careerbridge/database"
	"careerbridge/matching"
	"careerbridge/models"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database and points the globals at
// it so the notification emitter has somewhere to write.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.Course{},
		&models.Application{},
		&models.Notification{},
	))

	config.AppConfig = &config.Config{}
	database.Database = database.DbInstance{Db: db}

	return db
}

func createUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	user := models.User{
		Name:     role + " user",
		Email:    fmt.Sprintf("%s-%d@example.com", role, time.Now().UnixNano()),
		Role:     role,
		Password: "secret-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, institutionID uint, title string) models.Course {
	t.Helper()
	course := models.Course{InstitutionID: institutionID, Title: title, Status: "ACTIVE"}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func applicationByID(t *testing.T, db *gorm.DB, id uint) models.Application {
	t.Helper()
	var application models.Application
	require.NoError(t, db.First(&application, id).Error)
	return application
}

func TestApplyAcceptRejectsOtherOffersAndVacatesSeats(t *testing.T) {
	db := setupTestDB(t)

	institution := createUser(t, db, models.RoleInstitution)
	student := createUser(t, db, models.RoleStudent)
	other := createUser(t, db, models.RoleStudent)
	courseA := createCourse(t, db, institution.ID, "Software Engineering")
	courseB := createCourse(t, db, institution.ID, "Data Science")

	now := time.Now()
	target := models.Application{StudentID: student.ID, CourseID: courseA.ID, InstitutionID: institution.ID,
		Status: models.ApplicationStatusAdmitted, AdmissionPublished: true, AppliedAt: now}
	second := models.Application{StudentID: student.ID, CourseID: courseB.ID, InstitutionID: institution.ID,
		Status: models.ApplicationStatusAdmitted, AdmissionPublished: true, AppliedAt: now}
	waitlisted := models.Application{StudentID: other.ID, CourseID: courseB.ID, InstitutionID: institution.ID,
		Status: models.ApplicationStatusWaitlisted, AppliedAt: now.Add(time.Hour)}
	require.NoError(t, db.Create(&target).Error)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&waitlisted).Error)

	vacated, err := applyAccept(db, student.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{courseB.ID}, vacated)

	assert.Equal(t, models.ApplicationStatusAccepted, applicationByID(t, db, target.ID).Status)

	rejected := applicationByID(t, db, second.ID)
	assert.Equal(t, models.ApplicationStatusRejected, rejected.Status)
	assert.Equal(t, matching.RejectedAfterAcceptReason, rejected.StatusReason)

	// Exactly one accepted application for the student
	var accepted int64
	db.Model(&models.Application{}).Where("student_id = ? AND status = ?", student.ID, models.ApplicationStatusAccepted).Count(&accepted)
	assert.Equal(t, int64(1), accepted)
}

func TestApplyAcceptRequiresAdmittedTarget(t *testing.T) {
	db := setupTestDB(t)

	institution := createUser(t, db, models.RoleInstitution)
	student := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, institution.ID, "Economics")

	pending := models.Application{StudentID: student.ID, CourseID: course.ID, InstitutionID: institution.ID,
		Status: models.ApplicationStatusPending, AppliedAt: time.Now()}
	require.NoError(t, db.Create(&pending).Error)

	_, err := applyAccept(db, student.ID, pending.ID)
	assert.ErrorIs(t, err, matching.ErrNotAdmitted)
}

func TestApplyAcceptRefusesSecondAccept(t *testing.T) {
	db := setupTestDB(t)

	institution := createUser(t, db, models.RoleInstitution)
	student := createUser(t, db, models.RoleStudent)
	courseA := createCourse(t, db, institution.ID, "History")
	courseB := createCourse(t, db, institution.ID, "Philosophy")

	accepted := models.Application{StudentID: student.ID, CourseID: courseA.ID, InstitutionID: institution.ID,
		Status: models.ApplicationStatusAccepted, AppliedAt: time.Now()}
	admitted := models.Application{StudentID: student.ID, CourseID: courseB.ID, InstitutionID: institution.ID,
		Status: models.ApplicationStatusAdmitted, AdmissionPublished: true, AppliedAt: time.Now()}
	require.NoError(t, db.Create(&accepted).Error)
	require.NoError(t, db.Create(&admitted).Error)

	_, err := applyAccept(db, student.ID, admitted.ID)
	assert.ErrorIs(t, err, matching.ErrAlreadyAccepted)

	assert.Equal(t, models.ApplicationStatusAdmitted, applicationByID(t, db, admitted.ID).Status)
}

func TestPromoteFromWaitlistPicksEarliestApplicant(t *testing.T) {
	db := setupTestDB(t)

	institution := createUser(t, db, models.RoleInstitution)
	first := createUser(t, db, models.RoleStudent)
	second := createUser(t, db, models.RoleStudent)
	course := createCourse(t, db, institution.ID, "Mathematics")

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	early := models.Application{StudentID: first.ID, CourseID: course.ID, InstitutionID: institution.ID,
		Status: models.ApplicationStatusWaitlisted, AppliedAt: base}
	late := models.Application{StudentID: second.ID, CourseID: course.ID, InstitutionID: institution.ID,
		Status: models.ApplicationStatusWaitlisted, AppliedAt: base.Add(time.Minute)}
	require.NoError(t, db.Create(&early).Error)
	require.NoError(t, db.Create(&late).Error)

	require.NoError(t, promoteFromWaitlist(db, course.ID))

	promoted := applicationByID(t, db, early.ID)
	assert.Equal(t, models.ApplicationStatusAdmitted, promoted.Status)
	assert.True(t, promoted.PromotedFromWaitlist)
	assert.True(t, promoted.AdmissionPublished)

	assert.Equal(t, models.ApplicationStatusWaitlisted, applicationByID(t, db, late.ID).Status)

	// The promoted student gets a notification
	var count int64
	db.Model(&models.Notification{}).Where("user_id = ?", first.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPromoteFromWaitlistEmptyListIsNoError(t *testing.T) {
	db := setupTestDB(t)

	assert.NoError(t, promoteFromWaitlist(db, 42))
}

func TestCreateApplicationEnforcesLimits(t *testing.T) {
	db := setupTestDB(t)

	institution := createUser(t, db, models.RoleInstitution)
	student := createUser(t, db, models.RoleStudent)
	courseA := createCourse(t, db, institution.ID, "Biology")
	courseB := createCourse(t, db, institution.ID, "Chemistry")
	courseC := createCourse(t, db, institution.ID, "Physics")

	_, err := createApplication(db, student.ID, &courseA)
	require.NoError(t, err)

	// Same course twice
	_, err = createApplication(db, student.ID, &courseA)
	assert.ErrorIs(t, err, errAlreadyApplied)

	_, err = createApplication(db, student.ID, &courseB)
	require.NoError(t, err)

	// Third application at the same institution
	_, err = createApplication(db, student.ID, &courseC)
	assert.ErrorIs(t, err, errInstitutionFull)

	// The failed attempts must not leave records behind
	var count int64
	db.Model(&models.Application{}).Where("student_id = ?", student.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}
