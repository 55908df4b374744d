package controllers

import (
	"testing"

	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeLessonViewRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	err := AuthorizeLessonView(db, f.student.ID, &f.lessons[0])
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestAuthorizeLessonViewUnlockedLesson(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	assert.NoError(t, AuthorizeLessonView(db, f.student.ID, &f.lessons[0]))
}

func TestAuthorizeLessonViewLockedLessonCountsPriorLessons(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 3)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	// Lesson 3 is locked and needs the two lessons before it graded.
	err = AuthorizeLessonView(db, f.student.ID, &f.lessons[2])
	assert.ErrorIs(t, err, ErrPriorLessonsIncomplete)

	completeLesson(t, db, f, 0)
	err = AuthorizeLessonView(db, f.student.ID, &f.lessons[2])
	assert.ErrorIs(t, err, ErrPriorLessonsIncomplete)

	completeLesson(t, db, f, 1)
	assert.NoError(t, AuthorizeLessonView(db, f.student.ID, &f.lessons[2]))
}

func TestAuthorizeLessonViewUngradedSubmissionDoesNotUnlock(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 2)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	_, err = SubmitWork(db, f.student.ID, f.assignments[0].ID, "pending answer", "")
	require.NoError(t, err)

	err = AuthorizeLessonView(db, f.student.ID, &f.lessons[1])
	assert.ErrorIs(t, err, ErrPriorLessonsIncomplete)
}

func TestAuthorizeLessonViewCompletedEnrollmentKeepsAccess(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)
	completeLesson(t, db, f, 0)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.student.ID, f.course.ID).First(&enrollment).Error)
	require.Equal(t, courseModels.EnrollCompleted, enrollment.Status)

	assert.NoError(t, AuthorizeLessonView(db, f.student.ID, &f.lessons[0]))
}

func TestAuthorizeLessonViewCancelledEnrollmentDenied(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", f.student.ID, f.course.ID).
		Update("status", courseModels.EnrollCancelled).Error)

	err = AuthorizeLessonView(db, f.student.ID, &f.lessons[0])
	assert.ErrorIs(t, err, ErrNotEnrolled)
}
