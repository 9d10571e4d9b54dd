package route

import (
	"github.com/gofiber/fiber/v2"

	"monges_backend/internals/features/monks/controller"
	"monges_backend/internals/features/monks/service"
)

type Deps struct {
	Store    *service.Store
	Backup   *service.BackupService
	Snapshot *service.Snapshot
	PageSize int
	TopN     int
}

func MonkRoutes(api fiber.Router, d Deps) {
	monkCtrl := controller.NewMonkController(d.Store, d.Snapshot, d.PageSize, d.TopN)
	backupCtrl := controller.NewBackupController(d.Backup, d.Store, d.Snapshot)

	monks := api.Group("/monks")
	monks.Post("/", monkCtrl.CreateMonk)              // ➕ create
	monks.Get("/", monkCtrl.ListMonks)                // 📄 semua record
	monks.Get("/search", monkCtrl.SearchMonks)        // 🔍 filter + halaman
	monks.Get("/options/:field", monkCtrl.GetOptions) // 🔽 dropdown filter
	monks.Get("/stats/:field", monkCtrl.GetStats)     // 📊 grafik
	monks.Get("/summary", monkCtrl.GetSummary)        // 📊 angka ringkas
	monks.Get("/export", backupCtrl.ExportCSV)        // 📤 CSV
	monks.Get("/:id", monkCtrl.GetMonk)               // 👁️ detail
	monks.Put("/:id", monkCtrl.UpdateMonk)            // ✏️ update
	monks.Delete("/:id", monkCtrl.DeleteMonk)         // 🗑️ delete

	api.Post("/backup", backupCtrl.BackupDB)
	api.Post("/restore", backupCtrl.RestoreDB)
}
