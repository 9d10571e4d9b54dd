package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	monkRoutes "monges_backend/internals/features/monks/route"
	"monges_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, deps monkRoutes.Deps, env string) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, deps.Store, env)

	api := app.Group("/api")

	// backup/restore menyalin seluruh file db → dibatasi
	fileOps := middlewares.FileOpRateLimiter()
	api.Use("/backup", fileOps)
	api.Use("/restore", fileOps)

	log.Println("[INFO] Mounting Monk routes...")
	monkRoutes.MonkRoutes(api, deps)
}
