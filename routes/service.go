package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
)

// SetupServiceRoutes configures the catalog and its admin routes
func SetupServiceRoutes(app *fiber.App) {
	app.Get("/list_services", middleware.Protected(), controllers.ListServices)

	admin := app.Group("/admin/services", middleware.Protected(), middleware.RequireAdmin())
	admin.Post("/", controllers.CreateService)
	admin.Patch("/:id", controllers.UpdateService)
}
