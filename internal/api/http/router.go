package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/session-toolbar/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Toolbar *handlers.ToolbarHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Put("/session/token", cfg.Toolbar.StoreToken)

	toolbar := app.Group("/toolbar")
	toolbar.Get("/", cfg.Toolbar.Get)
	toolbar.Post("/actions/:key", cfg.Toolbar.Action)
	toolbar.Post("/locale", cfg.Toolbar.SelectLocale)
}
