package controllers

import (
	"testing"

	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitWorkRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := SubmitWork(db, f.student.ID, f.assignments[0].ID, "answer", "")
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestSubmitWorkHonorsLessonGate(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 2)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	_, err = SubmitWork(db, f.student.ID, f.assignments[1].ID, "skipping ahead", "")
	assert.ErrorIs(t, err, ErrPriorLessonsIncomplete)
}

func TestSubmitWorkOverwritesWhileUngraded(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	first, err := SubmitWork(db, f.student.ID, f.assignments[0].ID, "draft", "")
	require.NoError(t, err)

	second, err := SubmitWork(db, f.student.ID, f.assignments[0].ID, "final", "https://files.test/final.pdf")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "final", second.Content)
	assert.Equal(t, "https://files.test/final.pdf", second.FileURL)

	var count int64
	db.Model(&courseModels.Submission{}).
		Where("assignment_id = ? AND user_id = ?", f.assignments[0].ID, f.student.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitWorkGradedSubmissionImmutable(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	submission, err := SubmitWork(db, f.student.ID, f.assignments[0].ID, "answer", "")
	require.NoError(t, err)

	_, err = GradeWork(db, submission.ID, 70, "")
	require.NoError(t, err)

	_, err = SubmitWork(db, f.student.ID, f.assignments[0].ID, "second try", "")
	assert.ErrorIs(t, err, ErrSubmissionGraded)

	var stored courseModels.Submission
	require.NoError(t, db.First(&stored, submission.ID).Error)
	assert.Equal(t, "answer", stored.Content)
}

func TestSubmitWorkUnknownAssignment(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	_, err = SubmitWork(db, f.student.ID, f.assignments[0].ID+999, "answer", "")
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}
