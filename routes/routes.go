package routes

import (
	"registro/config"
	"registro/controllers"
	"registro/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(middlewares.Metrics())
	// Inside Metrics, so panicking requests are counted as 500s.
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Options("*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	SetupRoutes(app)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	return app
}

func SetupRoutes(app *fiber.App) {
	app.Get("/", controllers.NewForm)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	form := app.Group("/registro/:id")
	form.Get("/", controllers.ShowForm)
	form.Post("/input", controllers.UpdateField)
	form.Post("/blur", controllers.BlurField)
	form.Post("/toggle-password", controllers.TogglePassword)
	form.Post("/submit", controllers.Submit)

	api := app.Group("/api")
	api.Post("/validate", controllers.ValidateRegistration)
}
