package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
)

const customerNotFoundMsg = "Cliente não encontrado."

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc       *usecase.CustomerUseCase
	validate *Validator
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, validate *Validator) *CustomerHandler {
	return &CustomerHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	in, ok, err := h.parse(c)
	if !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return crudError(c, err, customerNotFoundMsg)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter cliente por ID
// @Tags         clientes
// @Produce      json
// @Param        id   path  string  true  "ID do cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clientes/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return crudError(c, err, customerNotFoundMsg)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Param        limit   query  int  false  "Máximo de registros"  default(100)
// @Param        offset  query  int  false  "Deslocamento"         default(0)
// @Success      200  {array}  dto.CustomerResponse
// @Router       /clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "parâmetros de paginação inválidos")
	}
	list, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return crudError(c, err, customerNotFoundMsg)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Atualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID do cliente"
// @Param        body  body  dto.CustomerRequest  true  "Dados do cliente"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /clientes/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	in, ok, err := h.parse(c)
	if !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return crudError(c, err, customerNotFoundMsg)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir cliente
// @Tags         clientes
// @Param        id   path  string  true  "ID do cliente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clientes/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return crudError(c, err, customerNotFoundMsg)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parse decodifica y valida el cuerpo. Si ok es false, la respuesta de error ya fue escrita.
func (h *CustomerHandler) parse(c *fiber.Ctx) (in dto.CustomerRequest, ok bool, err error) {
	if err := c.BodyParser(&in); err != nil {
		return in, false, errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "corpo inválido")
	}
	if err := h.validate.Struct(in); err != nil {
		if failedTag(err) == "cpf" {
			return in, false, errorJSON(c, fiber.StatusBadRequest, "INVALID_CPF", "CPF inválido")
		}
		return in, false, errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "campos obrigatórios: "+failedFields(err))
	}
	return in, true, nil
}
