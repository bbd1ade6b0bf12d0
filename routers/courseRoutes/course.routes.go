package courseRoutes

import (
	controllers "mzrun/controllers/course"
	validators "mzrun/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", validators.CourseList(), controllers.ListCourses)
	courseGroup.Get("/:id", controllers.GetCourseDetail)

	app.Get("/api/categories", controllers.ListCategories)
}
