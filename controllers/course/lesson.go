package controllers

import (
	"errors"

	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthorizeLessonView decides whether the user may view the lesson now.
// The user must hold an active enrollment in the lesson's course; a locked
// lesson additionally requires every lesson at a strictly lower order_num in
// the same module to be completed (graded submission on its assignment).
func AuthorizeLessonView(db *gorm.DB, userID uint, lesson *courseModels.Lesson) error {
	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", lesson.ModuleID, false).First(&module).Error; err != nil {
		return ErrLessonNotFound
	}

	var enrollment courseModels.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
		userID, module.CourseID, courseModels.EnrollActive, false).First(&enrollment).Error
	if err != nil {
		// A completed enrollment still grants access to all content.
		err = db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
			userID, module.CourseID, courseModels.EnrollCompleted, false).First(&enrollment).Error
		if err != nil {
			return ErrNotEnrolled
		}
	}

	if lesson.IsLocked {
		completed := countCompletedInModule(db, userID, lesson.ModuleID)
		if completed < int64(lesson.OrderNum-1) {
			return ErrPriorLessonsIncomplete
		}
	}

	return nil
}

// GetLesson returns the lesson content after the access gate passes
func GetLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := AuthorizeLessonView(db, userID, &lesson); err != nil {
		switch {
		case errors.Is(err, ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
		case errors.Is(err, ErrPriorLessonsIncomplete):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the previous lessons to unlock this one!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
	}

	// Attach the assignment, if the lesson has one
	var assignment courseModels.Assignment
	hasAssignment := db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).First(&assignment).Error == nil

	response := fiber.Map{"lesson": lesson}
	if hasAssignment {
		response["assignment"] = assignment
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", response)
}
