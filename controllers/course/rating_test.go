package controllers

import (
	"testing"

	"coursehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCourseOnceRangeRejected(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := RateCourseOnce(db, f.student.ID, f.course.ID, 0, "")
	assert.ErrorIs(t, err, ErrRatingOutOfRange)

	_, err = RateCourseOnce(db, f.student.ID, f.course.ID, 6, "")
	assert.ErrorIs(t, err, ErrRatingOutOfRange)

	var count int64
	db.Model(&models.Rating{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRateCourseOnceDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := RateCourseOnce(db, f.student.ID, f.course.ID, 4, "solid course")
	require.NoError(t, err)

	_, err = RateCourseOnce(db, f.student.ID, f.course.ID, 5, "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyRated)

	var count int64
	db.Model(&models.Rating{}).Where("user_id = ? AND course_id = ?", f.student.ID, f.course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRateCourseOnceUnpublishedCourse(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	require.NoError(t, db.Model(&f.course).Update("is_published", false).Error)

	_, err := RateCourseOnce(db, f.student.ID, f.course.ID, 3, "")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestAverageRating(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	avg, count := AverageRating(db, f.course.ID)
	assert.Equal(t, float64(0), avg)
	assert.Equal(t, int64(0), count)

	other := models.User{Email: "other@test.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)

	_, err := RateCourseOnce(db, f.student.ID, f.course.ID, 5, "")
	require.NoError(t, err)
	_, err = RateCourseOnce(db, other.ID, f.course.ID, 2, "")
	require.NoError(t, err)

	avg, count = AverageRating(db, f.course.ID)
	assert.InDelta(t, 3.5, avg, 0.001)
	assert.Equal(t, int64(2), count)
}
