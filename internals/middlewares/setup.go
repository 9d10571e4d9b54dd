package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"monges_backend/internals/configs"
	"monges_backend/internals/middlewares/logger"
)

const requestTimeout = 30 * time.Second

// SetupMiddlewares memasang middleware global. Urutan penting: recover paling luar.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware(!cfg.Packaged()))
	app.Use(RequestID(requestTimeout))
	if !cfg.Packaged() {
		app.Use(logger.LoggerMiddleware())
	}
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
