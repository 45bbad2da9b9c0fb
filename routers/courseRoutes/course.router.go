package courseRoutes

import (
	courseController "github.com/DengXianqi/learning-tracker/controllers/course"
	"github.com/DengXianqi/learning-tracker/middleware"
	courseValidator "github.com/DengXianqi/learning-tracker/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog and saved-course routes. Search and
// detail lookups allow anonymous access.
func SetupCourseRoutes(app *fiber.App, ctrl *courseController.CourseController) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/search", middleware.OptionalJWTMiddleware, courseValidator.SearchCourses(), ctrl.SearchCourses)
	courseGroup.Get("/saved/list", middleware.JWTMiddleware, ctrl.GetSavedCourses)
	courseGroup.Get("/recommended/for-me", middleware.JWTMiddleware, ctrl.GetRecommended)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, ctrl.GetCourse)
	courseGroup.Post("/:id/save", middleware.JWTMiddleware, ctrl.SaveCourse)
	courseGroup.Delete("/:id/unsave", middleware.JWTMiddleware, ctrl.UnsaveCourse)
}
