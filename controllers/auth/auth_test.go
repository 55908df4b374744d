package authController

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.SeedRoles(db)
	database.Database = database.DbInstance{Db: db}

	return db
}

func TestProfileIncludesEnrollmentsWithLiveProgress(t *testing.T) {
	db := newTestDB(t)
	config.AppConfig = &config.Config{
		JWTKey:              "test-secret",
		AccessTokenTTLHours: 1,
	}

	instructor := models.User{Email: "instructor@test.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&instructor).Error)

	student := models.User{Email: "student@test.test", PasswordHash: "x", FirstName: "Sam"}
	require.NoError(t, db.Create(&student).Error)

	category := models.Category{Name: "Mathematics", Slug: "mathematics"}
	require.NoError(t, db.Create(&category).Error)

	course := courseModels.Course{
		Title:        "Algebra 101",
		Slug:         "algebra-101",
		InstructorID: instructor.ID,
		CategoryID:   category.ID,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&course).Error)

	module := courseModels.Module{CourseID: course.ID, Title: "Basics", OrderNum: 1}
	require.NoError(t, db.Create(&module).Error)

	lesson := courseModels.Lesson{ModuleID: module.ID, Title: "Lesson 1", OrderNum: 1}
	require.NoError(t, db.Create(&lesson).Error)

	assignment := courseModels.Assignment{LessonID: lesson.ID, Title: "Homework 1", MaxScore: 100}
	require.NoError(t, db.Create(&assignment).Error)

	enrollment := courseModels.Enrollment{
		UserID:     student.ID,
		CourseID:   course.ID,
		Status:     courseModels.EnrollActive,
		EnrolledAt: time.Now(),
	}
	require.NoError(t, db.Create(&enrollment).Error)

	// One graded submission over one lesson: live progress is 100 even
	// though the cached progress_pct still says 0.
	score := 90
	submission := courseModels.Submission{
		AssignmentID: assignment.ID,
		UserID:       student.ID,
		SubmittedAt:  time.Now(),
		Content:      "answer",
		Score:        &score,
		IsGraded:     true,
	}
	require.NoError(t, db.Create(&submission).Error)

	token, err := middleware.GenerateJWT(student.ID, student.Email, []uint{models.RoleStudent})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/user/profile", middleware.JWTMiddleware, Profile)

	req := httptest.NewRequest("GET", "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Data struct {
			User struct {
				Email string `json:"email"`
			} `json:"user"`
			Enrollments []struct {
				CourseTitle string `json:"course_title"`
				CourseSlug  string `json:"course_slug"`
				ProgressPct int    `json:"progress_pct"`
			} `json:"enrollments"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))

	assert.Equal(t, "student@test.test", payload.Data.User.Email)
	require.Len(t, payload.Data.Enrollments, 1)
	assert.Equal(t, "Algebra 101", payload.Data.Enrollments[0].CourseTitle)
	assert.Equal(t, "algebra-101", payload.Data.Enrollments[0].CourseSlug)
	assert.Equal(t, 100, payload.Data.Enrollments[0].ProgressPct)
}
