package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10) → 422 dengan detail per field
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string)
	for _, fieldErr := range ve {
		key := fieldErr.Field()
		fieldErrors[key] = append(fieldErrors[key], fieldErr.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}

// Operation result untuk bridge backup/restore: boolean sukses + pesan.
type OperationResult struct {
	Success    bool   `json:"success"`
	Cancelled  bool   `json:"cancelled,omitempty"`
	Invalidate bool   `json:"invalidate,omitempty"`
	Bytes      int64  `json:"bytes,omitempty"`
	Message    string `json:"message,omitempty"`
}

func JsonResult(c *fiber.Ctx, status int, r OperationResult) error {
	return c.Status(status).JSON(r)
}
