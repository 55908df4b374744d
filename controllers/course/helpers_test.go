package controllers

import (
	"fmt"
	"testing"

	"coursehub/database"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the same schema and
// error translation the server runs with.
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

type fixture struct {
	student     models.User
	instructor  models.User
	course      courseModels.Course
	module      courseModels.Module
	lessons     []courseModels.Lesson
	assignments []courseModels.Assignment
}

// seedCourse builds a published course with one module and lessonCount
// lessons, each carrying a max-score-100 assignment. Every lesson after the
// first is locked, so it only opens once the ones before it are graded.
func seedCourse(t *testing.T, db *gorm.DB, lessonCount int) *fixture {
	t.Helper()

	f := &fixture{}

	f.instructor = models.User{Email: "instructor@test.test", PasswordHash: "x", FirstName: "Ina"}
	require.NoError(t, db.Create(&f.instructor).Error)

	f.student = models.User{Email: "student@test.test", PasswordHash: "x", FirstName: "Sam"}
	require.NoError(t, db.Create(&f.student).Error)

	category := models.Category{Name: "Mathematics", Slug: "mathematics"}
	require.NoError(t, db.Create(&category).Error)

	f.course = courseModels.Course{
		Title:        "Algebra 101",
		Slug:         "algebra-101",
		InstructorID: f.instructor.ID,
		CategoryID:   category.ID,
		Price:        49.99,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&f.course).Error)

	f.module = courseModels.Module{CourseID: f.course.ID, Title: "Basics", OrderNum: 1}
	require.NoError(t, db.Create(&f.module).Error)

	for i := 1; i <= lessonCount; i++ {
		lesson := courseModels.Lesson{
			ModuleID: f.module.ID,
			Title:    fmt.Sprintf("Lesson %d", i),
			OrderNum: i,
			IsLocked: i > 1,
		}
		require.NoError(t, db.Create(&lesson).Error)
		f.lessons = append(f.lessons, lesson)

		assignment := courseModels.Assignment{
			LessonID: lesson.ID,
			Title:    fmt.Sprintf("Homework %d", i),
			MaxScore: 100,
		}
		require.NoError(t, db.Create(&assignment).Error)
		f.assignments = append(f.assignments, assignment)
	}

	return f
}

// completeLesson submits and grades the student's work for lesson index i
func completeLesson(t *testing.T, db *gorm.DB, f *fixture, i int) {
	t.Helper()

	submission, err := SubmitWork(db, f.student.ID, f.assignments[i].ID, "my answer", "")
	require.NoError(t, err)

	_, err = GradeWork(db, submission.ID, 90, "good work")
	require.NoError(t, err)
}
