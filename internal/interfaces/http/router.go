package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-api/internal/application/billing"
	"github.com/jhoicas/pdv-api/internal/application/usecase"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	SaleUC     *billing.SaleUseCase
	ReceiptPDF *billing.PDFUseCase
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	validate := NewValidator()

	// Clientes
	customers := app.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC, validate)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Produtos
	products := app.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC, validate)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Ponto de venda
	pdv := app.Group("/pdv")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptPDF, validate, log)
	pdv.Post("/", saleHandler.Create)
	pdv.Get("/", saleHandler.List)
	pdv.Get("/:id", saleHandler.GetByID)
	pdv.Get("/:id/cupom", saleHandler.PDF)
}
