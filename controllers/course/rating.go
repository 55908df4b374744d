package controllers

import (
	"errors"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RateCourseOnce inserts a single rating per (user, course). The unique index
// is the real guard; the lookup is a fast path for a friendly error.
func RateCourseOnce(db *gorm.DB, userID uint, courseID uint, rating int, comment string) (*models.Rating, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	var existing models.Rating
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return nil, ErrAlreadyRated
	}

	record := models.Rating{
		UserID:   userID,
		CourseID: courseID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}
	return &record, nil
}

// AverageRating computes the course's mean rating on read; nothing is stored.
func AverageRating(db *gorm.DB, courseID uint) (float64, int64) {
	var count int64
	db.Model(&models.Rating{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&count)
	if count == 0 {
		return 0, 0
	}

	var avg float64
	db.Model(&models.Rating{}).Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("AVG(rating)").Scan(&avg)
	return avg, count
}

func RateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedRating").(*struct {
		Rating  *int   `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok || reqData.Rating == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	rating, err := RateCourseOnce(database.Database.Db, userID, uint(courseID), *reqData.Rating, reqData.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ErrRatingOutOfRange):
			return middleware.ValidationErrorResponse(c, map[string]string{"rating": "Rating must be between 1 and 5!"})
		case errors.Is(err, ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, ErrAlreadyRated):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already rated this course!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to rate course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course rated successfully!", rating)
}

func GetCourseRatings(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var ratings []models.Rating
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("created_at desc").Find(&ratings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ratings!", nil)
	}

	avg, count := AverageRating(db, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ratings fetched successfully!", fiber.Map{
		"ratings": ratings,
		"average": avg,
		"total":   count,
	})
}
