package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
)

// SetupBookingRoutes configures the booking lifecycle routes
func SetupBookingRoutes(app *fiber.App) {
	app.Post("/book_service", middleware.Protected(), controllers.BookService)
	app.Get("/my", middleware.Protected(), controllers.MyBookings)
	app.Get("/provider/bookings", middleware.Protected(), controllers.ProviderBookings)
	// ownership is checked in the handler so unknown bookings still 404
	app.Patch("/:id", middleware.Protected(), controllers.UpdateBookingStatus)
}
