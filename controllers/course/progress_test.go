package controllers

import (
	"testing"

	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCourseProgressEmptyCourse(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 0)

	assert.Equal(t, 0, ComputeCourseProgress(db, f.student.ID, f.course.ID))
}

func TestComputeCourseProgressRounding(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 3)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, ComputeCourseProgress(db, f.student.ID, f.course.ID))

	completeLesson(t, db, f, 0)
	assert.Equal(t, 33, ComputeCourseProgress(db, f.student.ID, f.course.ID))

	completeLesson(t, db, f, 1)
	assert.Equal(t, 67, ComputeCourseProgress(db, f.student.ID, f.course.ID))

	completeLesson(t, db, f, 2)
	assert.Equal(t, 100, ComputeCourseProgress(db, f.student.ID, f.course.ID))
}

func TestComputeCourseProgressIgnoresUngradedSubmissions(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 2)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	_, err = SubmitWork(db, f.student.ID, f.assignments[0].ID, "pending answer", "")
	require.NoError(t, err)

	assert.Equal(t, 0, ComputeCourseProgress(db, f.student.ID, f.course.ID))
}

func TestComputeCourseProgressIsPerUser(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 2)

	other := models.User{Email: "other@test.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)
	completeLesson(t, db, f, 0)

	assert.Equal(t, 50, ComputeCourseProgress(db, f.student.ID, f.course.ID))
	assert.Equal(t, 0, ComputeCourseProgress(db, other.ID, f.course.ID))
}

func TestRefreshEnrollmentProgressCompletesEnrollment(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 2)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	completeLesson(t, db, f, 0)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.student.ID, f.course.ID).First(&enrollment).Error)
	assert.Equal(t, 50, enrollment.ProgressPct)
	assert.Equal(t, courseModels.EnrollActive, enrollment.Status)
	assert.Nil(t, enrollment.CompletedAt)

	completeLesson(t, db, f, 1)

	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.student.ID, f.course.ID).First(&enrollment).Error)
	assert.Equal(t, 100, enrollment.ProgressPct)
	assert.Equal(t, courseModels.EnrollCompleted, enrollment.Status)
	require.NotNil(t, enrollment.CompletedAt)
}
