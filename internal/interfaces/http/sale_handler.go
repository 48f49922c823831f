package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/billing"
	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

// Mensajes del PDV. El frontend los muestra tal cual.
const (
	msgSaleRequiredFields  = `Os campos "produtos", "clienteId" e "valorPago" são obrigatórios.`
	msgSaleCustomerMissing = "Cliente não encontrado."
	msgSaleProductMissing  = "Produto com ID %s não encontrado."
	msgSaleInsufficient    = "Valor pago insuficiente para cobrir o total da compra."
	msgSaleFailedPrefix    = "Erro ao gerar cupom: "
)

// SaleHandler maneja el punto de venta (/pdv).
type SaleHandler struct {
	sales    *billing.SaleUseCase
	pdf      *billing.PDFUseCase
	validate *Validator
	log      *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(sales *billing.SaleUseCase, pdf *billing.PDFUseCase, validate *Validator, log *logger.Logger) *SaleHandler {
	return &SaleHandler{sales: sales, pdf: pdf, validate: validate, log: log}
}

// Create godoc
// @Summary      Registrar venda e emitir cupom
// @Description  Os erros são devolvidos em texto plano.
// @Tags         pdv
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Cliente, produtos e valor pago"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {string}  string
// @Failure      404   {string}  string
// @Failure      500   {string}  string
// @Router       /pdv [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(msgSaleRequiredFields)
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(msgSaleRequiredFields)
	}

	receipt, err := h.sales.ProcessSale(c.UserContext(), in)
	if err != nil {
		return h.saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

func (h *SaleHandler) saleError(c *fiber.Ctx, err error) error {
	var productErr *domain.ProductNotFoundError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).SendString(msgSaleRequiredFields)
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusNotFound).SendString(msgSaleCustomerMissing)
	case errors.As(err, &productErr):
		return c.Status(fiber.StatusNotFound).SendString(fmt.Sprintf(msgSaleProductMissing, productErr.ID))
	case errors.Is(err, domain.ErrInsufficientPayment):
		return c.Status(fiber.StatusBadRequest).SendString(msgSaleInsufficient)
	}
	h.log.Error().Err(err).Msg("erro ao gerar cupom")
	return c.Status(fiber.StatusInternalServerError).SendString(msgSaleFailedPrefix + err.Error())
}

// GetByID godoc
// @Summary      Obter cupom
// @Tags         pdv
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pdv/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.sales.GetReceipt(c.UserContext(), c.Params("id"))
	if err != nil {
		return crudError(c, err, "Cupom não encontrado.")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cupons (mais recentes primeiro)
// @Tags         pdv
// @Produce      json
// @Param        limit   query  int  false  "Máximo de registros"  default(100)
// @Param        offset  query  int  false  "Deslocamento"         default(0)
// @Success      200  {array}  dto.ReceiptResponse
// @Router       /pdv [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "parâmetros de paginação inválidos")
	}
	list, err := h.sales.ListReceipts(c.UserContext(), page)
	if err != nil {
		return crudError(c, err, "")
	}
	return c.JSON(list)
}

// PDF godoc
// @Summary      Cupom em PDF
// @Tags         pdv
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pdv/{id}/cupom [get]
func (h *SaleHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.Error().Err(err).Str("venda", c.Params("id")).Msg("gerar PDF do cupom")
		}
		return crudError(c, err, "Cupom não encontrado.")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", filename))
	return c.Send(pdfBytes)
}
