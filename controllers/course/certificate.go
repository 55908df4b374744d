package controllers

import (
	"errors"
	"time"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueCertificate issues a certificate once per (user, course), after the
// enrollment is completed. The verification code is a uuid unique across all
// certificates.
func IssueCertificate(db *gorm.DB, userID uint, courseID uint) (*models.Certificate, error) {
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return nil, ErrNotEnrolled
	}

	// The live computation decides completion, not the cached percentage.
	if enrollment.Status != courseModels.EnrollCompleted && ComputeCourseProgress(db, userID, courseID) < 100 {
		return nil, ErrCourseNotCompleted
	}

	var existing models.Certificate
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return nil, ErrCertificateExists
	}

	certificate := models.Certificate{
		UserID:           userID,
		CourseID:         courseID,
		VerificationCode: uuid.NewString(),
		IssuedAt:         time.Now(),
	}
	if err := db.Create(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCertificateExists
		}
		return nil, err
	}
	return &certificate, nil
}

func RequestCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	certificate, err := IssueCertificate(database.Database.Db, userID, uint(courseID))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		case errors.Is(err, ErrCourseNotCompleted):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
		case errors.Is(err, ErrCertificateExists):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
		}
	}

	go utils.SendCertificateEmail(user.Email, user.FirstName, certificate.VerificationCode)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", certificate)
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	type CertificateWithCourse struct {
		models.Certificate
		CourseTitle string `json:"course_title"`
	}

	var certificates []models.Certificate
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{Certificate: cert, CourseTitle: course.Title}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// VerifyCertificate is the public lookup by verification code
func VerifyCertificate(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code is required!", nil)
	}

	db := database.Database.Db

	var certificate models.Certificate
	if err := db.Where("verification_code = ? AND is_deleted = ?", code, false).First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	var course courseModels.Course
	db.Where("id = ?", certificate.CourseID).First(&course)

	var user models.User
	db.Where("id = ?", certificate.UserID).First(&user)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified successfully!", fiber.Map{
		"certificate":  certificate,
		"course_title": course.Title,
		"holder_name":  user.FirstName + " " + user.LastName,
	})
}
