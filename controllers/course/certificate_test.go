package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 2)

	_, err := IssueCertificate(db, f.student.ID, f.course.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)

	_, err = EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	_, err = IssueCertificate(db, f.student.ID, f.course.ID)
	assert.ErrorIs(t, err, ErrCourseNotCompleted)

	completeLesson(t, db, f, 0)
	_, err = IssueCertificate(db, f.student.ID, f.course.ID)
	assert.ErrorIs(t, err, ErrCourseNotCompleted)

	completeLesson(t, db, f, 1)
	certificate, err := IssueCertificate(db, f.student.ID, f.course.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, certificate.VerificationCode)
	assert.False(t, certificate.IssuedAt.IsZero())
}

func TestIssueCertificateOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)
	completeLesson(t, db, f, 0)

	first, err := IssueCertificate(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	_, err = IssueCertificate(db, f.student.ID, f.course.ID)
	assert.ErrorIs(t, err, ErrCertificateExists)

	// The first certificate is untouched.
	assert.NotEmpty(t, first.VerificationCode)
}
