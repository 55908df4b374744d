package controllers

import (
	"testing"

	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeWorkScoreBounds(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	submission, err := SubmitWork(db, f.student.ID, f.assignments[0].ID, "answer", "")
	require.NoError(t, err)

	_, err = GradeWork(db, submission.ID, -1, "")
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	_, err = GradeWork(db, submission.ID, 101, "")
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	graded, err := GradeWork(db, submission.ID, 0, "zero is a valid grade")
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 0, *graded.Score)
	assert.True(t, graded.IsGraded)
}

func TestGradeWorkSetsFieldsAndRefreshesCache(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 2)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	submission, err := SubmitWork(db, f.student.ID, f.assignments[0].ID, "answer", "")
	require.NoError(t, err)

	graded, err := GradeWork(db, submission.ID, 85, "well done")
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 85, *graded.Score)
	assert.Equal(t, "well done", graded.Feedback)
	assert.True(t, graded.IsGraded)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.student.ID, f.course.ID).First(&enrollment).Error)
	assert.Equal(t, 50, enrollment.ProgressPct)
}

func TestGradeWorkMissingSubmission(t *testing.T) {
	db := newTestDB(t)
	seedCourse(t, db, 1)

	_, err := GradeWork(db, 12345, 50, "")
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestGradeWorkFailedGradeStillCountsLessonComplete(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	submission, err := SubmitWork(db, f.student.ID, f.assignments[0].ID, "answer", "")
	require.NoError(t, err)

	// Completion means graded, not passed.
	_, err = GradeWork(db, submission.ID, 10, "see feedback")
	require.NoError(t, err)

	assert.Equal(t, 100, ComputeCourseProgress(db, f.student.ID, f.course.ID))
}
