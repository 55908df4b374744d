package controllers

import (
	"coursehub/database"
	"coursehub/middleware"
	courseModels "coursehub/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with pagination and category filter
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*struct {
		Page     *int `query:"page"`
		Limit    *int `query:"limit"`
		Category *int `query:"category"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true)
	if ok && reqData.Category != nil {
		db = db.Where("category_id = ?", *reqData.Category)
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseWithRating struct {
		courseModels.Course
		AverageRating float64 `json:"average_rating"`
		RatingCount   int64   `json:"rating_count"`
	}

	result := make([]CourseWithRating, len(courses))
	for i, course := range courses {
		avg, count := AverageRating(database.Database.Db, course.ID)
		result[i] = CourseWithRating{Course: course, AverageRating: avg, RatingCount: count}
	}

	response := map[string]interface{}{
		"courses": result,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns one published course by slug, with its module and
// lesson outline, instructor and average rating
func GetCourseDetails(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Preload("Instructor").Preload("Category").
		Where("slug = ? AND is_deleted = ? AND is_published = ?", slug, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	type ModuleWithLessons struct {
		courseModels.Module
		Lessons []courseModels.Lesson `json:"lessons"`
	}

	var modules []courseModels.Module
	db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Order("order_num asc").Find(&modules)

	outline := make([]ModuleWithLessons, len(modules))
	for i, module := range modules {
		var lessons []courseModels.Lesson
		db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("order_num asc").Find(&lessons)
		// The outline shows titles only; content stays behind the access gate.
		for j := range lessons {
			lessons[j].Content = ""
		}
		outline[i] = ModuleWithLessons{Module: module, Lessons: lessons}
	}

	avg, count := AverageRating(db, course.ID)

	response := fiber.Map{
		"course":         course,
		"instructor":     course.Instructor,
		"modules":        outline,
		"average_rating": avg,
		"rating_count":   count,
	}

	// Enrollment flag when the caller is authenticated
	if userID, ok := c.Locals("userId").(uint); ok {
		var enrollment courseModels.Enrollment
		isEnrolled := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&enrollment).Error == nil
		response["is_enrolled"] = isEnrolled
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", response)
}

// GetCourseLearning is the in-progress view for enrolled learners: the full
// outline with per-lesson completion and live progress
func GetCourseLearning(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	slug := c.Locals("courseSlug").(string)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("slug = ? AND is_deleted = ? AND is_published = ?", slug, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	type LessonState struct {
		courseModels.Lesson
		IsCompleted bool `json:"is_completed"`
		IsViewable  bool `json:"is_viewable"`
	}
	type ModuleState struct {
		courseModels.Module
		Lessons []LessonState `json:"lessons"`
	}

	var modules []courseModels.Module
	db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Order("order_num asc").Find(&modules)

	state := make([]ModuleState, len(modules))
	for i, module := range modules {
		var lessons []courseModels.Lesson
		db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("order_num asc").Find(&lessons)

		entries := make([]LessonState, len(lessons))
		for j, lesson := range lessons {
			entries[j] = LessonState{
				Lesson:      lesson,
				IsCompleted: isLessonCompleted(db, userID, lesson.ID),
				IsViewable:  AuthorizeLessonView(db, userID, &lessons[j]) == nil,
			}
			entries[j].Content = ""
		}
		state[i] = ModuleState{Module: module, Lessons: entries}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning view fetched successfully!", fiber.Map{
		"course":       course,
		"enrollment":   enrollment,
		"modules":      state,
		"progress_pct": ComputeCourseProgress(db, userID, course.ID),
	})
}
