package userRoutes

import (
	authControllers "coursehub/controllers/auth"
	courseControllers "coursehub/controllers/course"
	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up routes for the logged-in user's own data
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", authControllers.Profile)
	userGroup.Get("/enrollments", courseControllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", courseControllers.GetUserCertificates)
}
