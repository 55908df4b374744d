package controllers

import (
	"errors"
	"log"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GradeWork finalizes a submission: it validates the score against the
// assignment's max_score, sets score/feedback, flips is_graded, and
// synchronously refreshes the enrollment's cached progress. This is the only
// writer of those three fields.
func GradeWork(db *gorm.DB, submissionID uint, score int, feedback string) (*courseModels.Submission, error) {
	var submission courseModels.Submission
	if err := db.Where("id = ? AND is_deleted = ?", submissionID, false).First(&submission).Error; err != nil {
		return nil, ErrSubmissionNotFound
	}

	var assignment courseModels.Assignment
	if err := db.Where("id = ?", submission.AssignmentID).First(&assignment).Error; err != nil {
		return nil, ErrAssignmentNotFound
	}

	if score < 0 || score > assignment.MaxScore {
		return nil, ErrScoreOutOfRange
	}

	submission.Score = &score
	submission.Feedback = feedback
	submission.IsGraded = true
	if err := db.Save(&submission).Error; err != nil {
		return nil, err
	}

	// Keep the denormalized enrollment percentage in step with this grade.
	var lesson courseModels.Lesson
	if err := db.Where("id = ?", assignment.LessonID).First(&lesson).Error; err == nil {
		var module courseModels.Module
		if err := db.Where("id = ?", lesson.ModuleID).First(&module).Error; err == nil {
			RefreshEnrollmentProgress(db, submission.UserID, module.CourseID)
		}
	}

	return &submission, nil
}

// courseIDForSubmission walks submission -> assignment -> lesson -> module
func courseIDForSubmission(db *gorm.DB, submission *courseModels.Submission) (uint, error) {
	var assignment courseModels.Assignment
	if err := db.Where("id = ?", submission.AssignmentID).First(&assignment).Error; err != nil {
		return 0, err
	}
	var lesson courseModels.Lesson
	if err := db.Where("id = ?", assignment.LessonID).First(&lesson).Error; err != nil {
		return 0, err
	}
	var module courseModels.Module
	if err := db.Where("id = ?", lesson.ModuleID).First(&module).Error; err != nil {
		return 0, err
	}
	return module.CourseID, nil
}

// GradeSubmission lets the course's instructor or an admin grade a submission
func GradeSubmission(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	submissionID := c.Locals("submissionID").(int)

	reqData, ok := c.Locals("validatedGrade").(*struct {
		Score    *int   `json:"score"`
		Feedback string `json:"feedback"`
	})
	if !ok || reqData.Score == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var submission courseModels.Submission
	if err := db.Where("id = ? AND is_deleted = ?", submissionID, false).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	// Only the owning instructor or an admin may grade.
	courseID, err := courseIDForSubmission(db, &submission)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	isAdmin, _ := middleware.HasRole(db, userID, models.RoleAdmin)
	if !isAdmin {
		var course courseModels.Course
		if err := db.Where("id = ? AND instructor_id = ?", courseID, userID).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to grade this submission!", nil)
		}
	}

	graded, err := GradeWork(db, uint(submissionID), *reqData.Score, reqData.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmissionNotFound), errors.Is(err, ErrAssignmentNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
		case errors.Is(err, ErrScoreOutOfRange):
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Score must be between 0 and the assignment max score!", nil)
		default:
			log.Printf("Error grading submission %d: %v", submissionID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", graded)
}

// ListSubmissionsForAssignment lists submissions for graders
func ListSubmissionsForAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentID := c.Locals("assignmentID").(int)

	db := database.Database.Db

	var assignment courseModels.Assignment
	if err := db.Where("id = ? AND is_deleted = ?", assignmentID, false).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	var lesson courseModels.Lesson
	var module courseModels.Module
	if err := db.Where("id = ?", assignment.LessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}
	if err := db.Where("id = ?", lesson.ModuleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	isAdmin, _ := middleware.HasRole(db, userID, models.RoleAdmin)
	if !isAdmin {
		var course courseModels.Course
		if err := db.Where("id = ? AND instructor_id = ?", module.CourseID, userID).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to view these submissions!", nil)
		}
	}

	var submissions []courseModels.Submission
	if err := db.Where("assignment_id = ? AND is_deleted = ?", assignmentID, false).Order("submitted_at asc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", fiber.Map{
		"submissions": submissions,
		"total":       len(submissions),
	})
}
