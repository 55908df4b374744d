package adminValidator

import (
	"coursehub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationErrors flattens validator.v10 output into the field->message map
// the response helper expects
func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "Failed on '" + fe.Tag() + "' validation!"
		}
	} else {
		errors["body"] = "Invalid request data!"
	}
	return errors
}

// CreateCourse validates the admin course creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string  `json:"title" validate:"required,min=3,max=255"`
			Description   string  `json:"description"`
			ShortDesc     string  `json:"short_desc" validate:"max=300"`
			InstructorID  uint    `json:"instructor_id" validate:"required"`
			CategoryID    uint    `json:"category_id" validate:"required"`
			Price         float64 `json:"price" validate:"gte=0"`
			ThumbnailURL  string  `json:"thumbnail_url"`
			DurationHours int     `json:"duration_hours" validate:"gte=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the admin course update body
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         *string  `json:"title" validate:"omitempty,min=3,max=255"`
			Description   *string  `json:"description"`
			ShortDesc     *string  `json:"short_desc" validate:"omitempty,max=300"`
			CategoryID    *uint    `json:"category_id"`
			Price         *float64 `json:"price" validate:"omitempty,gte=0"`
			ThumbnailURL  *string  `json:"thumbnail_url"`
			DurationHours *int     `json:"duration_hours" validate:"omitempty,gte=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateModule validates the admin module creation body
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3,max=255"`
			Description string `json:"description"`
			OrderNum    int    `json:"order_num" validate:"required,gte=1"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates the admin module update body
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
			Description *string `json:"description"`
			OrderNum    *int    `json:"order_num" validate:"omitempty,gte=1"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// CreateLesson validates the admin lesson creation body
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3,max=255"`
			Content     string `json:"content"`
			VideoURL    string `json:"video_url"`
			OrderNum    int    `json:"order_num" validate:"required,gte=1"`
			IsLocked    bool   `json:"is_locked"`
			DurationMin int    `json:"duration_min" validate:"gte=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validates the admin lesson update body
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
			Content     *string `json:"content"`
			VideoURL    *string `json:"video_url"`
			OrderNum    *int    `json:"order_num" validate:"omitempty,gte=1"`
			IsLocked    *bool   `json:"is_locked"`
			DurationMin *int    `json:"duration_min" validate:"omitempty,gte=0"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// CreateAssignment validates the admin assignment creation body
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3,max=255"`
			Description string `json:"description"`
			MaxScore    int    `json:"max_score" validate:"required,gte=1"`
			IsRequired  *bool  `json:"is_required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}
