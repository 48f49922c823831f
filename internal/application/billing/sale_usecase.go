package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
	"github.com/jhoicas/pdv-api/internal/domain/sale"
)

// SaleUseCase registra ventas del PDV y emite el cupón fiscal.
// No descuenta stock ni modifica clientes o productos.
type SaleUseCase struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	timeout      time.Duration
	now          func() time.Time
}

// NewSaleUseCase construye el caso de uso. timeout acota cada llamada al repositorio.
func NewSaleUseCase(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	timeout time.Duration,
) *SaleUseCase {
	return &SaleUseCase{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		timeout:      timeout,
		now:          time.Now,
	}
}

// ProcessSale valida la solicitud, obtiene cliente y productos (en orden, uno por uno),
// calcula el cupón y lo persiste.
//
// Errores:
//   - domain.ErrInvalidInput          si falta clienteId, produtos o valorPago (sin tocar el repositorio).
//   - domain.ErrCustomerNotFound      si el cliente no existe.
//   - *domain.ProductNotFoundError    con el primer producto inexistente en el orden de la solicitud.
//   - domain.ErrInsufficientPayment   si valorPago < total.
//   - cualquier otro error            falla del repositorio (incluye timeout).
func (uc *SaleUseCase) ProcessSale(ctx context.Context, in dto.SaleRequest) (*dto.ReceiptResponse, error) {
	if in.CustomerID == "" || len(in.ProductIDs) == 0 || in.Paid == nil {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.getCustomer(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	// Secuencial: el primer producto faltante en el orden de la lista aborta la venta.
	products := make([]*entity.Product, 0, len(in.ProductIDs))
	for _, id := range in.ProductIDs {
		product, err := uc.getProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	receipt, err := sale.Calculate(customer, products, *in.Paid)
	if err != nil {
		return nil, err
	}
	receipt.CreatedAt = uc.now()

	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	if err := uc.saleRepo.Create(sctx, receipt); err != nil {
		return nil, err
	}
	return ToReceiptResponse(receipt), nil
}

// GetReceipt obtiene un cupón persistido. Devuelve domain.ErrNotFound si no existe.
func (uc *SaleUseCase) GetReceipt(ctx context.Context, id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.getReceipt(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToReceiptResponse(receipt), nil
}

// ListReceipts lista los cupones, más recientes primero.
func (uc *SaleUseCase) ListReceipts(ctx context.Context, page dto.PageRequest) ([]*dto.ReceiptResponse, error) {
	page.Normalize()
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	list, err := uc.saleRepo.List(sctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ToReceiptResponse(r))
	}
	return out, nil
}

func (uc *SaleUseCase) getCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	customer, err := uc.customerRepo.GetByID(sctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (uc *SaleUseCase) getProduct(ctx context.Context, id string) (*entity.Product, error) {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	product, err := uc.productRepo.GetByID(sctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar produto %s: %w", id, err)
	}
	if product == nil {
		return nil, &domain.ProductNotFoundError{ID: id}
	}
	return product, nil
}

func (uc *SaleUseCase) getReceipt(ctx context.Context, id string) (*entity.Receipt, error) {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	receipt, err := uc.saleRepo.GetByID(sctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	return receipt, nil
}

// ToReceiptResponse convierte el cupón al formato JSON del PDV.
func ToReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	items := make([]dto.ReceiptItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.ReceiptItemResponse{
			Name:        it.Name,
			Description: it.Description,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
		})
	}
	return &dto.ReceiptResponse{
		Customer: dto.ReceiptCustomerResponse{
			Name: r.Customer.Name,
			CPF:  r.Customer.CPF,
		},
		Items:  items,
		Total:  r.Total.InexactFloat64(),
		Paid:   r.Paid.InexactFloat64(),
		Change: r.Change.InexactFloat64(),
		ID:     r.ID,
	}
}
