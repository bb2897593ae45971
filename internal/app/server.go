package app

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/tutorlane/tutorlane/internal/controller"
)

// NewServer builds the fiber application: middleware, the error-taxonomy
// handler and all API routes.
func NewServer(deps controller.Deps, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "tutorlane",
		ErrorHandler: controller.NewErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	controller.Register(app, deps)

	return app
}
