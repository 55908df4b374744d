package courseValidator

import (
	"strings"

	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

// Submission validates the assignment submission body
func Submission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content string `json:"content"`
			FileURL string `json:"file_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Content) == "" && strings.TrimSpace(reqData.FileURL) == "" {
			errors["content"] = "Submission content or file is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// Grade validates the grading body; the max_score bound is enforced by the
// workflow where the assignment is known
func Grade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Score    *int   `json:"score"`
			Feedback string `json:"feedback"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Score == nil {
			errors["score"] = "Score is required!"
		} else if *reqData.Score < 0 {
			errors["score"] = "Score cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}

// Rating validates the rating body
func Rating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating  *int   `json:"rating"`
			Comment string `json:"comment"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating == nil {
			errors["rating"] = "Rating is required!"
		} else if *reqData.Rating < 1 || *reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}

// Comment validates the comment body
func Comment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content  string `json:"content"`
			ParentID *uint  `json:"parent_id"`
			LessonID *uint  `json:"lesson_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Comment content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}
