package main

import (
	"catering_manager/config"
	"catering_manager/database"
	"catering_manager/helper"
	"catering_manager/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // payment proof screenshots
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartBookedDatesResyncScheduler()
	defer helper.StopBookedDatesResyncScheduler()
	helper.StartPaymentReminderScheduler()
	defer helper.StopPaymentReminderScheduler()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
