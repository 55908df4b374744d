package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
)

func CreateComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedComment").(*struct {
		Content  string `json:"content"`
		ParentID *uint  `json:"parent_id"`
		LessonID *uint  `json:"lesson_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.LessonID != nil {
		var lesson courseModels.Lesson
		if err := db.Joins("JOIN modules ON modules.id = lessons.module_id").
			Where("lessons.id = ? AND modules.course_id = ? AND lessons.is_deleted = ?", *reqData.LessonID, courseID, false).
			First(&lesson).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in this course!", nil)
		}
	}

	if reqData.ParentID != nil {
		var parent models.Comment
		if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", *reqData.ParentID, courseID, false).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent comment not found!", nil)
		}
	}

	comment := models.Comment{
		UserID:   userID,
		CourseID: uint(courseID),
		LessonID: reqData.LessonID,
		ParentID: reqData.ParentID,
		Content:  reqData.Content,
	}
	if err := db.Create(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment posted successfully!", comment)
}

func GetCourseComments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false)

	if lessonID := c.QueryInt("lesson_id"); lessonID > 0 {
		db = db.Where("lesson_id = ?", lessonID)
	}

	var comments []models.Comment
	if err := db.Order("created_at asc").Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", fiber.Map{
		"comments": comments,
		"total":    len(comments),
	})
}

// DeleteComment soft-deletes a comment; only the author or an admin may do it
func DeleteComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	commentID := c.Locals("commentID").(int)

	db := database.Database.Db

	var comment models.Comment
	if err := db.Where("id = ? AND is_deleted = ?", commentID, false).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	if comment.UserID != userID {
		isAdmin, _ := middleware.HasRole(db, userID, models.RoleAdmin)
		if !isAdmin {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own comments!", nil)
		}
	}

	comment.IsDeleted = true
	if err := db.Save(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}
