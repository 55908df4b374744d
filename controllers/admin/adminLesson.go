package adminControllers

import (
	"errors"

	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AdminCreateLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title" validate:"required,min=3,max=255"`
		Content     string `json:"content"`
		VideoURL    string `json:"video_url"`
		OrderNum    int    `json:"order_num" validate:"required,gte=1"`
		IsLocked    bool   `json:"is_locked"`
		DurationMin int    `json:"duration_min" validate:"gte=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	lesson := courseModels.Lesson{
		ModuleID:    uint(moduleID),
		Title:       reqData.Title,
		Content:     reqData.Content,
		VideoURL:    reqData.VideoURL,
		OrderNum:    reqData.OrderNum,
		IsLocked:    reqData.IsLocked,
		DurationMin: reqData.DurationMin,
	}
	if err := db.Create(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A lesson already holds this position in the module!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func AdminUpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
		Content     *string `json:"content"`
		VideoURL    *string `json:"video_url"`
		OrderNum    *int    `json:"order_num" validate:"omitempty,gte=1"`
		IsLocked    *bool   `json:"is_locked"`
		DurationMin *int    `json:"duration_min" validate:"omitempty,gte=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.Content != nil {
		lesson.Content = *reqData.Content
	}
	if reqData.VideoURL != nil {
		lesson.VideoURL = *reqData.VideoURL
	}
	if reqData.OrderNum != nil {
		lesson.OrderNum = *reqData.OrderNum
	}
	if reqData.IsLocked != nil {
		lesson.IsLocked = *reqData.IsLocked
	}
	if reqData.DurationMin != nil {
		lesson.DurationMin = *reqData.DurationMin
	}

	if err := db.Save(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A lesson already holds this position in the module!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func AdminDeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsDeleted = true
	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// AdminCreateAssignment attaches the lesson's assignment (at most one)
func AdminCreateAssignment(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedAssignment").(*struct {
		Title       string `json:"title" validate:"required,min=3,max=255"`
		Description string `json:"description"`
		MaxScore    int    `json:"max_score" validate:"required,gte=1"`
		IsRequired  *bool  `json:"is_required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	assignment := courseModels.Assignment{
		LessonID:    uint(lessonID),
		Title:       reqData.Title,
		Description: reqData.Description,
		MaxScore:    reqData.MaxScore,
		IsRequired:  true,
	}
	if reqData.IsRequired != nil {
		assignment.IsRequired = *reqData.IsRequired
	}

	if err := db.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already has an assignment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}
