package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const appName = "musclemap"

// NewApp builds the fiber application with middleware and routes. CORS is only
// enabled when origins are configured.
func NewApp(handler *Handler, corsOrigins []string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler,
	})

	app.Use(recover.New())
	app.Use(handler.RequestLogger)
	app.Use(compress.New())
	if origins := joinOrigins(corsOrigins); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     "GET,POST,OPTIONS",
			AllowHeaders:     "Content-Type",
			AllowCredentials: true,
		}))
	}

	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func jsonErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = strings.ToLower(fiberErr.Message)
	}
	return apiError(c, status, message)
}

func joinOrigins(origins []string) string {
	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "*" {
			continue
		}
		cleaned = append(cleaned, origin)
	}
	return strings.Join(cleaned, ",")
}
