package adminControllers

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats aggregates the headline numbers for the admin panel
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, publishedCourses int64
	var totalEnrollments, completedEnrollments int64
	var totalSubmissions, ungradedSubmissions int64
	var totalCertificates int64

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND status = ?", false, courseModels.EnrollCompleted).Count(&completedEnrollments)
	db.Model(&courseModels.Submission{}).Where("is_deleted = ?", false).Count(&totalSubmissions)
	db.Model(&courseModels.Submission{}).Where("is_deleted = ? AND is_graded = ?", false, false).Count(&ungradedSubmissions)
	db.Model(&models.Certificate{}).Where("is_deleted = ?", false).Count(&totalCertificates)

	var revenue float64
	db.Model(&models.Payment{}).Where("is_deleted = ? AND status = ?", false, models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"users":                 totalUsers,
		"courses":               totalCourses,
		"published_courses":     publishedCourses,
		"enrollments":           totalEnrollments,
		"completed_enrollments": completedEnrollments,
		"submissions":           totalSubmissions,
		"ungraded_submissions":  ungradedSubmissions,
		"certificates":          totalCertificates,
		"revenue":               revenue,
	})
}
