package middleware

import (
	"coursehub/database"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HasRole reports whether the user holds the given role
func HasRole(db *gorm.DB, userID uint, roleID uint) (bool, error) {
	var assignment models.UserRole
	err := db.Where("user_id = ? AND role_id = ?", userID, roleID).First(&assignment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RequireRole returns a middleware that rejects users without the role.
// The acting identity always comes from the JWT context, never from the
// request body or query.
func RequireRole(roleID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}

		held, err := HasRole(database.Database.Db, userID, roleID)
		if err != nil {
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
		}
		if !held {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}

// RequireAdmin gates the unsafe admin methods behind role id 1
func RequireAdmin(c *fiber.Ctx) error {
	return RequireRole(models.RoleAdmin)(c)
}
