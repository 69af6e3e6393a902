package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
)

// SetupAuthRoutes configures registration, verification and login routes
func SetupAuthRoutes(app *fiber.App) {
	// Public routes
	app.Post("/signup", controllers.Register)
	app.Post("/verify-otp", controllers.VerifyOTP)
	app.Post("/login", controllers.Login)
	app.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	app.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	app.Patch("/profile", middleware.Protected(), controllers.UpdateProfile)
	app.Post("/profile/picture", middleware.Protected(), controllers.UpdateProfilePicture)
}
