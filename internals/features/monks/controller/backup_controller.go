package controller

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"monges_backend/internals/features/monks/dto"
	"monges_backend/internals/features/monks/export"
	"monges_backend/internals/features/monks/service"
	helper "monges_backend/internals/helpers"
)

type BackupController struct {
	Backup   *service.BackupService
	Snapshot *service.Snapshot
	Store    *service.Store
}

func NewBackupController(backup *service.BackupService, store *service.Store, snapshot *service.Snapshot) *BackupController {
	return &BackupController{Backup: backup, Store: store, Snapshot: snapshot}
}

// bodyPicker: path yang sudah dipilih UI (dialog) dikirim di body request.
type bodyPicker struct{ path string }

func (p bodyPicker) SavePath(context.Context, string) (string, error) { return p.path, nil }
func (p bodyPicker) OpenPath(context.Context) (string, error) { return p.path, nil }

func parsePath(c *fiber.Ctx) (bodyPicker, error) {
	var body dto.PathRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return bodyPicker{}, err
		}
	}
	return bodyPicker{path: strings.TrimSpace(body.Path)}, nil
}

// =======================
// 💾 POST /api/backup
// =======================
func (ctrl *BackupController) BackupDB(c *fiber.Ctx) error {
	picker, err := parsePath(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	n, err := ctrl.Backup.Backup(c.UserContext(), picker)
	switch {
	case errors.Is(err, service.ErrUserCancelled):
		return helper.JsonResult(c, fiber.StatusOK, helper.OperationResult{Success: false, Cancelled: true})
	case err != nil:
		log.Printf("[ERROR] backup: %v", err)
		return helper.JsonResult(c, fiber.StatusInternalServerError, helper.OperationResult{Success: false, Message: err.Error()})
	}
	return helper.JsonResult(c, fiber.StatusOK, helper.OperationResult{Success: true, Bytes: n})
}

// =======================
// ♻️ POST /api/restore
// Sukses → invalidate:true, UI wajib fetch ulang semua data.
// =======================
func (ctrl *BackupController) RestoreDB(c *fiber.Ctx) error {
	picker, err := parsePath(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	n, err := ctrl.Backup.Restore(c.UserContext(), picker)
	switch {
	case errors.Is(err, service.ErrUserCancelled):
		return helper.JsonResult(c, fiber.StatusOK, helper.OperationResult{Success: false, Cancelled: true})
	case err != nil:
		log.Printf("[ERROR] restore: %v", err)
		return helper.JsonResult(c, fiber.StatusInternalServerError, helper.OperationResult{Success: false, Message: err.Error()})
	}
	ctrl.Snapshot.Invalidate()
	return helper.JsonResult(c, fiber.StatusOK, helper.OperationResult{Success: true, Invalidate: true, Bytes: n})
}

// =======================
// 📤 GET /api/monks/export (CSV, seluruh data tanpa filter)
// =======================
func (ctrl *BackupController) ExportCSV(c *fiber.Ctx) error {
	records, err := ctrl.Store.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out, err := export.CSV(records)
	if errors.Is(err, export.ErrNothingToExport) {
		return helper.JsonError(c, fiber.StatusNotFound, "Nada para exportar.")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Attachment(export.FileName(time.Now()))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(out)
}
