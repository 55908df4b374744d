package adminControllers

import (
	"errors"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AdminCreateCategory(c *fiber.Ctx) error {
	reqData := new(struct {
		Name     string `json:"name"`
		ParentID *uint  `json:"parent_id"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Name == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category name is required!", nil)
	}

	db := database.Database.Db

	if reqData.ParentID != nil {
		var parent models.Category
		if err := db.Where("id = ?", *reqData.ParentID).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent category not found!", nil)
		}
	}

	category := models.Category{
		Name:     reqData.Name,
		Slug:     utils.Slugify(reqData.Name),
		ParentID: reqData.ParentID,
	}
	if err := db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
		"total":      len(categories),
	})
}
