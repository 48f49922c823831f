package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
	"github.com/jhoicas/pdv-api/internal/domain"
)

const productNotFoundMsg = "Produto não encontrado."

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	validate *Validator
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, validate *Validator) *ProductHandler {
	return &ProductHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /produtos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, ok, err := h.parse(c)
	if !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         produtos
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /produtos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Param        limit   query  int  false  "Máximo de registros"  default(100)
// @Param        offset  query  int  false  "Deslocamento"         default(0)
// @Success      200  {array}  dto.ProductResponse
// @Router       /produtos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "parâmetros de paginação inválidos")
	}
	list, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID do produto"
// @Param        body  body  dto.ProductRequest  true  "Dados do produto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /produtos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	in, ok, err := h.parse(c)
	if !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir produto
// @Tags         produtos
// @Param        id   path  string  true  "ID do produto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /produtos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "Nome obrigatório e Preço maior que zero")
	}
	return crudError(c, err, productNotFoundMsg)
}

func (h *ProductHandler) parse(c *fiber.Ctx) (in dto.ProductRequest, ok bool, err error) {
	if err := c.BodyParser(&in); err != nil {
		return in, false, errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "corpo inválido")
	}
	if err := h.validate.Struct(in); err != nil {
		return in, false, errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "campos obrigatórios: "+failedFields(err))
	}
	if !in.Price.IsPositive() {
		return in, false, errorJSON(c, fiber.StatusBadRequest, "INVALID_PRICE", "Preço inválido")
	}
	return in, true, nil
}
