package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/i474232898/composite-nowcast/internal/logger"
)

const (
	appName = "composite-nowcast"

	// writeSlack is added to the fetch timeout to cover rendering and the response write.
	writeSlack = 15 * time.Second
)

// NewApp builds the Fiber app with the centralized error handler, global
// middleware and the health endpoint. Responses may take as long as one
// fetch cycle, so the write timeout follows fetchTimeout.
func NewApp(log logger.Logger, fetchTimeout time.Duration) *fiber.App {
	if log == nil {
		log = logger.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          fetchTimeout + writeSlack,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("request failed",
					logger.String("path", c.Path()),
					logger.Err(err),
				)
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": appName,
		})
	})

	return app
}
