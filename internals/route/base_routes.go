package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"monges_backend/internals/features/monks/service"
)

func BaseRoutes(app *fiber.App, store *service.Store, env string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Monges archive backend 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"db_path":        store.Path(),
			"revision":       store.Revision(),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    env,
		})
	})
}
