package adminRoutes

import (
	adminControllers "coursehub/controllers/admin"
	"coursehub/middleware"
	adminValidators "coursehub/validators/admin"
	courseValidators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the management surface. Everything here
// requires a valid token and the admin role.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)

	adminGroup.Get("/dashboard", adminControllers.AdminDashboardStats)

	// Courses
	adminGroup.Post("/course", adminValidators.CreateCourse(), adminControllers.AdminCreateCourse)
	adminGroup.Get("/course/list", adminControllers.AdminGetAllCourses)
	adminGroup.Patch("/course/:id", courseValidators.IDParam("id", "courseID"), adminValidators.UpdateCourse(), adminControllers.AdminUpdateCourse)
	adminGroup.Delete("/course/:id", courseValidators.IDParam("id", "courseID"), adminControllers.AdminDeleteCourse)
	adminGroup.Post("/course/:id/publish", courseValidators.IDParam("id", "courseID"), adminControllers.AdminPublishCourse)
	adminGroup.Get("/course/:id/enrollments", courseValidators.IDParam("id", "courseID"), adminControllers.AdminGetCourseEnrollments)

	// Modules
	adminGroup.Post("/course/:id/module", courseValidators.IDParam("id", "courseID"), adminValidators.CreateModule(), adminControllers.AdminCreateModule)
	adminGroup.Get("/course/:id/modules", courseValidators.IDParam("id", "courseID"), adminControllers.AdminListModules)
	adminGroup.Patch("/module/:id", courseValidators.IDParam("id", "moduleID"), adminValidators.UpdateModule(), adminControllers.AdminUpdateModule)
	adminGroup.Delete("/module/:id", courseValidators.IDParam("id", "moduleID"), adminControllers.AdminDeleteModule)

	// Lessons and assignments
	adminGroup.Post("/module/:id/lesson", courseValidators.IDParam("id", "moduleID"), adminValidators.CreateLesson(), adminControllers.AdminCreateLesson)
	adminGroup.Patch("/lesson/:id", courseValidators.IDParam("id", "lessonID"), adminValidators.UpdateLesson(), adminControllers.AdminUpdateLesson)
	adminGroup.Delete("/lesson/:id", courseValidators.IDParam("id", "lessonID"), adminControllers.AdminDeleteLesson)
	adminGroup.Post("/lesson/:id/assignment", courseValidators.IDParam("id", "lessonID"), adminValidators.CreateAssignment(), adminControllers.AdminCreateAssignment)

	// Categories
	adminGroup.Post("/category", adminControllers.AdminCreateCategory)

	// Users and payments
	adminGroup.Get("/user/list", adminControllers.AdminGetAllUsers)
	adminGroup.Patch("/user/:id/active", courseValidators.IDParam("id", "targetUserID"), adminControllers.AdminSetUserActive)
	adminGroup.Post("/user/:id/role", courseValidators.IDParam("id", "targetUserID"), adminControllers.AdminAssignRole)
	adminGroup.Get("/payment/list", adminControllers.AdminGetAllPayments)

	// Category listing is public
	app.Get("/category/list", adminControllers.GetAllCategories)
}
