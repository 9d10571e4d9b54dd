package commands

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"monges_backend/internals/configs"
	monkRoutes "monges_backend/internals/features/monks/route"
	"monges_backend/internals/features/monks/service"
	helper "monges_backend/internals/helpers"
	"monges_backend/internals/middlewares"
	routes "monges_backend/internals/route"
)

// App: satu Store + service turunannya, dipakai bersama server & CLI.
type App struct {
	Config   configs.Config
	Store    *service.Store
	Backup   *service.BackupService
	Snapshot *service.Snapshot
}

// OpenApp membuka file DB di cfg.DBPath. Wajib Close().
func OpenApp(cfg configs.Config) (*App, error) {
	store := service.NewStore(configs.NewGormLogger(cfg.LogSQL))
	if err := store.Connect(cfg.DBPath); err != nil {
		return nil, err
	}
	log.Printf("✅ Database siap: %s", cfg.DBPath)
	return &App{
		Config:   cfg,
		Store:    store,
		Backup:   service.NewBackupService(store),
		Snapshot: service.NewSnapshot(store),
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}

func (a *App) Deps() monkRoutes.Deps {
	return monkRoutes.Deps{
		Store:    a.Store,
		Backup:   a.Backup,
		Snapshot: a.Snapshot,
		PageSize: a.Config.PageSize,
		TopN:     a.Config.StatsTopN,
	}
}

// NewServer membangun fiber app lengkap (middleware + routes) tanpa listen.
func NewServer(a *App) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             8 * 1024 * 1024,
		ErrorHandler:          helper.FromFiberError,
	})

	middlewares.SetupMiddlewares(app, a.Config)
	routes.SetupRoutes(app, a.Deps(), a.Config.AppEnv)
	return app
}
