package controllers

import (
	"testing"

	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollUserCreatesEnrollmentAndPayment(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	enrollment, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	assert.Equal(t, courseModels.EnrollActive, enrollment.Status)
	assert.Equal(t, 0, enrollment.ProgressPct)
	assert.False(t, enrollment.EnrolledAt.IsZero())
	require.NotNil(t, enrollment.PaymentID)

	var payment models.Payment
	require.NoError(t, db.First(&payment, *enrollment.PaymentID).Error)
	assert.Equal(t, f.student.ID, payment.UserID)
	assert.Equal(t, f.course.ID, payment.CourseID)
	assert.Equal(t, f.course.Price, payment.Amount)
	assert.Equal(t, models.PaymentCompleted, payment.Status)
	assert.NotEmpty(t, payment.TransactionID)
	require.NotNil(t, payment.PaidAt)
}

func TestEnrollUserDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.NoError(t, err)

	_, err = EnrollUser(db, f.student.ID, f.course.ID)
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)

	var enrollments, payments int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ?", f.student.ID).Count(&enrollments)
	db.Model(&models.Payment{}).Where("user_id = ?", f.student.ID).Count(&payments)
	assert.Equal(t, int64(1), enrollments)
	assert.Equal(t, int64(1), payments)
}

func TestEnrollUserRollsBackWhenPaymentInsertFails(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	// Break the payment insert; the enrollment insert inside the same
	// transaction must not survive.
	require.NoError(t, db.Exec("DROP TABLE payments").Error)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	require.Error(t, err)

	var enrollments int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ?", f.student.ID).Count(&enrollments)
	assert.Equal(t, int64(0), enrollments)
}

func TestEnrollUserUnpublishedCourse(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	require.NoError(t, db.Model(&f.course).Update("is_published", false).Error)

	_, err := EnrollUser(db, f.student.ID, f.course.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEnrollUserUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	f := seedCourse(t, db, 1)

	_, err := EnrollUser(db, f.student.ID, f.course.ID+999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
