package controllers

import (
	"errors"
	"time"

	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitWork records the learner's answer to an assignment. A learner may
// overwrite their own submission while it is ungraded; once graded it is
// immutable from this path. The unique index on (assignment_id, user_id)
// backs the one-submission rule under concurrency.
func SubmitWork(db *gorm.DB, userID uint, assignmentID uint, content, fileURL string) (*courseModels.Submission, error) {
	var assignment courseModels.Assignment
	if err := db.Where("id = ? AND is_deleted = ?", assignmentID, false).First(&assignment).Error; err != nil {
		return nil, ErrAssignmentNotFound
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", assignment.LessonID, false).First(&lesson).Error; err != nil {
		return nil, ErrAssignmentNotFound
	}

	// Submitting implies viewing: the same gate applies.
	if err := AuthorizeLessonView(db, userID, &lesson); err != nil {
		return nil, err
	}

	var existing courseModels.Submission
	err := db.Where("assignment_id = ? AND user_id = ? AND is_deleted = ?", assignmentID, userID, false).First(&existing).Error
	if err == nil {
		if existing.IsGraded {
			return nil, ErrSubmissionGraded
		}
		existing.Content = content
		existing.FileURL = fileURL
		existing.SubmittedAt = time.Now()
		if err := db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	submission := courseModels.Submission{
		AssignmentID: assignmentID,
		UserID:       userID,
		SubmittedAt:  time.Now(),
		Content:      content,
		FileURL:      fileURL,
	}
	if err := db.Create(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}
	return &submission, nil
}

func SubmitAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentID := c.Locals("assignmentID").(int)

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Content string `json:"content"`
		FileURL string `json:"file_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	submission, err := SubmitWork(database.Database.Db, userID, uint(assignmentID), reqData.Content, reqData.FileURL)
	if err != nil {
		switch {
		case errors.Is(err, ErrAssignmentNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		case errors.Is(err, ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
		case errors.Is(err, ErrPriorLessonsIncomplete):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the previous lessons first!", nil)
		case errors.Is(err, ErrSubmissionGraded):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Submission is already graded and cannot be changed!", nil)
		case errors.Is(err, ErrDuplicateSubmission):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment already submitted!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment submitted successfully!", submission)
}

// GetMySubmission returns the caller's submission for an assignment
func GetMySubmission(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentID := c.Locals("assignmentID").(int)

	var submission courseModels.Submission
	err := database.Database.Db.Where("assignment_id = ? AND user_id = ? AND is_deleted = ?", assignmentID, userID, false).First(&submission).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission fetched successfully!", submission)
}
