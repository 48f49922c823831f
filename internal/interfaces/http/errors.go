package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
)

func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// crudError traduce los errores de dominio de los CRUD a respuestas JSON.
// notFoundMsg se usa para domain.ErrNotFound.
func crudError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", notFoundMsg)
	case errors.Is(err, domain.ErrInvalidCPF):
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_CPF", "CPF inválido")
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusConflict, "DUPLICATE", "Já existe um cliente com esse CPF")
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "dados inválidos")
	}
	return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
}
