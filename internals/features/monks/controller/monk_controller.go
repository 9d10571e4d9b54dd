package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"monges_backend/internals/features/monks/dto"
	"monges_backend/internals/features/monks/query"
	"monges_backend/internals/features/monks/service"
	helper "monges_backend/internals/helpers"
)

var validateMonk = validator.New()

const filterPrefix = "f."

type MonkController struct {
	Store    *service.Store
	Snapshot *service.Snapshot
	PageSize int
	TopN     int
}

func NewMonkController(store *service.Store, snapshot *service.Snapshot, pageSize, topN int) *MonkController {
	return &MonkController{Store: store, Snapshot: snapshot, PageSize: pageSize, TopN: topN}
}

// =======================
// ➕ Create
// =======================
func (ctrl *MonkController) CreateMonk(c *fiber.Ctx) error {
	var body dto.MonkRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMonk.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	id, err := ctrl.Store.Create(c.UserContext(), body.ToModel())
	if err != nil {
		log.Printf("[ERROR] create monk: %v", err)
		return writeError(c, err)
	}
	return helper.JsonCreated(c, "Registro criado", id)
}

// =======================
// 📄 List (semua, urut nama)
// =======================
func (ctrl *MonkController) ListMonks(c *fiber.Ctx) error {
	records, err := ctrl.Snapshot.Records(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list monks: %v", err)
		return writeError(c, err)
	}
	return helper.JsonOK(c, "ok", records)
}

// =============================
// 🔍 Search + paginate
// Query: ?q=term&page=2&f.pais_nascimento=Portugal&f.ocupacao_oficio=Prior
// =============================
func (ctrl *MonkController) SearchMonks(c *fiber.Ctx) error {
	records, err := ctrl.Snapshot.Records(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	view := viewFromQuery(c)
	view.SetPage(helper.ParsePage(c))
	res := view.Apply(records, ctrl.PageSize)

	return helper.JsonList(c, "ok", res.Page, &res.Meta)
}

// =============================
// 🔽 Options untuk dropdown filter
// =============================
func (ctrl *MonkController) GetOptions(c *fiber.Ctx) error {
	records, err := ctrl.Snapshot.Records(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "ok", query.Options(records, c.Params("field")))
}

// =============================
// 👁️ Detail
// =============================
func (ctrl *MonkController) GetMonk(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}
	m, err := ctrl.Store.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

// =============================
// ✏️ Update (replace penuh)
// =============================
func (ctrl *MonkController) UpdateMonk(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.MonkRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMonk.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	m := body.ToModel()
	m.ID = id
	if err := ctrl.Store.Update(c.UserContext(), m); err != nil {
		log.Printf("[ERROR] update monk %s: %v", id, err)
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "Registro atualizado")
}

// =============================
// 🗑️ Delete (idempotent)
// =============================
func (ctrl *MonkController) DeleteMonk(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		log.Printf("[ERROR] delete monk %s: %v", id, err)
		return writeError(c, err)
	}
	return helper.JsonDeleted(c, "Registro removido")
}

// =============================
// utils
// =============================

// viewFromQuery: ?q= dan semua ?f.<field>= jadi View (halaman diset terpisah).
func viewFromQuery(c *fiber.Ctx) *query.View {
	view := query.NewView()
	view.SetTerm(c.Query("q"))
	for k, v := range c.Queries() {
		if key, ok := strings.CutPrefix(k, filterPrefix); ok {
			view.SetFilter(key, v)
		}
	}
	return view
}

// writeError memetakan error service ke response terstruktur. Error mentah tidak pernah keluar.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrStorage):
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "unexpected error")
	}
}
