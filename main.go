package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/cron"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/middleware"
	"github.com/meinhoongagan/service-marketplace/otp"
	"github.com/meinhoongagan/service-marketplace/payments"
	"github.com/meinhoongagan/service-marketplace/redis"
	"github.com/meinhoongagan/service-marketplace/routes"
)

func main() {
	app := fiber.New()
	db.Init()

	// OTP slot lives in redis when available, in memory otherwise
	var store otp.Store
	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
		store = otp.NewRedisStore(redis.Client)
	} else {
		log.Println("REDIS_ADDR not set, using in-memory OTP store")
		store = otp.NewMemoryStore()
	}
	controllers.OTPGate = otp.NewGate(store)
	controllers.PaymentGateway = payments.NewRazorpayGateway()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(middleware.RequestLogger())

	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupPaymentRoutes(app)
	routes.SetupBookingRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
}
