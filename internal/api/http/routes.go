package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/i474232898/composite-nowcast/internal/metrics"
	"github.com/i474232898/composite-nowcast/internal/nowcast"
	"github.com/i474232898/composite-nowcast/internal/render"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
// Every page view or API call runs exactly one fetch cycle, bounded by fetchTimeout.
func RegisterRoutes(app *fiber.App, service *nowcast.Service, fetchTimeout time.Duration) {
	snapshot := func(c *fiber.Ctx) nowcast.Snapshot {
		ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
		defer cancel()
		return service.Snapshot(ctx)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		page := render.Build(snapshot(c))

		c.Type("html", "utf-8")
		if err := render.HTML(c, page); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
		}
		return nil
	})

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/nowcast", func(c *fiber.Ctx) error {
		snap := snapshot(c)
		page := render.Build(snap)

		if page.Failed() {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":    true,
				"message":  page.Error,
				"snapshot": snap,
			})
		}

		return c.JSON(fiber.Map{
			"snapshot": snap,
			"view":     page,
		})
	})
}
