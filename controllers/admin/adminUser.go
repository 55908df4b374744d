package adminControllers

import (
	"errors"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AdminGetAllUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{})

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", response)
}

// AdminSetUserActive toggles the login-blocking activity flag
func AdminSetUserActive(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	reqData := new(struct {
		Active *bool `json:"active"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Active == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Active flag is required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsActive = *reqData.Active
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

// AdminAssignRole grants a role to a user; duplicates map onto the
// (user, role) unique index
func AdminAssignRole(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	reqData := new(struct {
		RoleID *uint `json:"role_id"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.RoleID == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Role ID is required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var role models.Role
	if err := db.Where("id = ?", *reqData.RoleID).First(&role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Role not found!", nil)
	}

	assignment := models.UserRole{UserID: uint(targetID), RoleID: *reqData.RoleID}
	if err := db.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already holds this role!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role assigned successfully!", assignment)
}

func AdminGetAllPayments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Payment{})

	var total int64
	db.Count(&total)

	var payments []models.Payment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	response := map[string]interface{}{
		"payments": payments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", response)
}
