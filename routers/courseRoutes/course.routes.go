package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog (read access is open)
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:slug/learning", middleware.JWTMiddleware, validators.CourseSlug(), controllers.GetCourseLearning)
	courseGroup.Get("/:slug", validators.CourseSlug(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Progress tracking
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetUserProgress)

	// Ratings
	courseGroup.Post("/:id/rating", middleware.JWTMiddleware, validators.CourseID(), validators.Rating(), controllers.RateCourse)
	courseGroup.Get("/:id/ratings", validators.CourseID(), controllers.GetCourseRatings)

	// Comments
	courseGroup.Post("/:id/comment", middleware.JWTMiddleware, validators.CourseID(), validators.Comment(), controllers.CreateComment)
	courseGroup.Get("/:id/comments", validators.CourseID(), controllers.GetCourseComments)

	// Certificates
	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, validators.CourseID(), controllers.RequestCertificate)

	// Lesson content sits behind the access gate
	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/:id", middleware.JWTMiddleware, validators.LessonID(), controllers.GetLesson)

	// Assignments and submissions
	assignmentGroup := app.Group("/assignment")
	assignmentGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.AssignmentID(), validators.Submission(), controllers.SubmitAssignment)
	assignmentGroup.Get("/:id/submission", middleware.JWTMiddleware, validators.AssignmentID(), controllers.GetMySubmission)
	assignmentGroup.Get("/:id/submissions", middleware.JWTMiddleware, validators.AssignmentID(), controllers.ListSubmissionsForAssignment)

	// Grading (instructor or admin; ownership checked in the controller)
	submissionGroup := app.Group("/submission")
	submissionGroup.Post("/:id/grade", middleware.JWTMiddleware, validators.SubmissionID(), validators.Grade(), controllers.GradeSubmission)

	// Comment deletion
	commentGroup := app.Group("/comment")
	commentGroup.Delete("/:id", middleware.JWTMiddleware, validators.CommentID(), controllers.DeleteComment)

	// Public certificate verification
	app.Get("/certificate/verify/:code", controllers.VerifyCertificate)
}
