package courseRoutes

import (
	controllers "mzrun/controllers/course"
	"mzrun/middleware"
	validators "mzrun/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin dashboard routes. Everything here
// requires a valid token with the ADMIN role.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/stats", controllers.DashboardStats)

	adminGroup.Get("/courses", controllers.ListAllCourses)
	adminGroup.Post("/courses", validators.CreateCourse(), controllers.CreateCourse)

	adminGroup.Get("/courses/:id/sessions", controllers.ListSessions)
	adminGroup.Post("/courses/:id/sessions", validators.CreateSession(), controllers.CreateSession)
}
