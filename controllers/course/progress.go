package controllers

import (
	"math"
	"time"

	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ComputeCourseProgress returns the user's completion percentage for a
// course: graded-submission-backed lessons over total lessons, rounded.
// It reads nothing but persisted state and is recomputed on every call, so
// the result always reflects the latest grading outcome. Courses with zero
// lessons count as zero progress.
func ComputeCourseProgress(db *gorm.DB, userID uint, courseID uint) int {
	var total int64
	db.Model(&courseModels.Lesson{}).
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("modules.course_id = ? AND modules.is_deleted = ? AND lessons.is_deleted = ?", courseID, false, false).
		Count(&total)

	if total == 0 {
		return 0
	}

	var completed int64
	db.Model(&courseModels.Submission{}).
		Distinct("assignments.lesson_id").
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Joins("JOIN lessons ON lessons.id = assignments.lesson_id").
		Joins("JOIN modules ON modules.id = lessons.module_id").
		Where("submissions.user_id = ? AND submissions.is_graded = ? AND submissions.is_deleted = ?", userID, true, false).
		Where("modules.course_id = ? AND modules.is_deleted = ? AND lessons.is_deleted = ?", courseID, false, false).
		Count(&completed)

	return int(math.Round(100 * float64(completed) / float64(total)))
}

// countCompletedInModule counts the user's graded-submission-backed lessons
// within one module. Used by the lesson access gate.
func countCompletedInModule(db *gorm.DB, userID uint, moduleID uint) int64 {
	var completed int64
	db.Model(&courseModels.Submission{}).
		Distinct("assignments.lesson_id").
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Joins("JOIN lessons ON lessons.id = assignments.lesson_id").
		Where("submissions.user_id = ? AND submissions.is_graded = ? AND submissions.is_deleted = ?", userID, true, false).
		Where("lessons.module_id = ? AND lessons.is_deleted = ?", moduleID, false).
		Count(&completed)
	return completed
}

// isLessonCompleted reports whether the user holds a graded submission for
// the lesson's assignment.
func isLessonCompleted(db *gorm.DB, userID uint, lessonID uint) bool {
	var n int64
	db.Model(&courseModels.Submission{}).
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Where("submissions.user_id = ? AND submissions.is_graded = ? AND submissions.is_deleted = ?", userID, true, false).
		Where("assignments.lesson_id = ?", lessonID).
		Count(&n)
	return n > 0
}

// RefreshEnrollmentProgress recomputes the cached progress_pct on the
// enrollment from the live computation and flips the enrollment to
// COMPLETED when it reaches 100. The cache exists only for listing views;
// every decision reads the computed value.
func RefreshEnrollmentProgress(db *gorm.DB, userID uint, courseID uint) {
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	pct := ComputeCourseProgress(db, userID, courseID)
	enrollment.ProgressPct = pct

	if pct >= 100 && enrollment.Status == courseModels.EnrollActive {
		enrollment.Status = courseModels.EnrollCompleted
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	db.Save(&enrollment)
}

// GetUserProgress reports live progress for the authenticated user
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	pct := ComputeCourseProgress(db, userID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":   enrollment,
		"progress_pct": pct,
	})
}
