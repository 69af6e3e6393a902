package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/controllers"
)

// SetupPaymentRoutes configures the payment gateway routes
func SetupPaymentRoutes(app *fiber.App) {
	payment := app.Group("/payment")
	payment.Post("/create", controllers.CreateOrder)
	payment.Post("/verify", controllers.VerifyPayment)
}
