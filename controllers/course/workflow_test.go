package controllers

import (
	"testing"

	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLearnerJourney walks a student through a whole course: enroll, work
// through the gated lessons in order, finish, and collect the certificate.
func TestLearnerJourney(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 2)

	enrollment, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollActive, enrollment.Status)

	// Fresh enrollment: lesson 1 open, lesson 2 locked behind it.
	require.NoError(t, AuthorizeLessonView(db, f.student.ID, &f.lessons[0]))
	err = AuthorizeLessonView(db, f.student.ID, &f.lessons[1])
	require.ErrorIs(t, err, ErrPriorLessonsIncomplete)

	submission, err := SubmitWork(db, f.student.ID, f.assignments[0].ID, "lesson one answer", "")
	require.NoError(t, err)
	_, err = GradeWork(db, submission.ID, 100, "perfect")
	require.NoError(t, err)

	assert.Equal(t, 50, ComputeCourseProgress(db, f.student.ID, f.course.ID))
	require.NoError(t, AuthorizeLessonView(db, f.student.ID, &f.lessons[1]))

	submission, err = SubmitWork(db, f.student.ID, f.assignments[1].ID, "lesson two answer", "")
	require.NoError(t, err)
	_, err = GradeWork(db, submission.ID, 95, "")
	require.NoError(t, err)

	assert.Equal(t, 100, ComputeCourseProgress(db, f.student.ID, f.course.ID))

	var refreshed courseModels.Enrollment
	require.NoError(t, db.First(&refreshed, enrollment.ID).Error)
	assert.Equal(t, courseModels.EnrollCompleted, refreshed.Status)
	require.NotNil(t, refreshed.CompletedAt)

	certificate, err := IssueCertificate(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	var stored models.Certificate
	require.NoError(t, db.Where("verification_code = ?", certificate.VerificationCode).First(&stored).Error)
	assert.Equal(t, f.student.ID, stored.UserID)
	assert.Equal(t, f.course.ID, stored.CourseID)

	// The finished student can still rate and revisit the material.
	_, err = RateCourseOnce(db, f.student.ID, f.course.ID, 5, "great course")
	require.NoError(t, err)
	assert.NoError(t, AuthorizeLessonView(db, f.student.ID, &f.lessons[0]))
}
