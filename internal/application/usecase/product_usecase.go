package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo    repository.ProductRepository
	timeout time.Duration
}

// NewProductUseCase construye el caso de uso. timeout acota cada llamada al repositorio.
func NewProductUseCase(repo repository.ProductRepository, timeout time.Duration) *ProductUseCase {
	return &ProductUseCase{repo: repo, timeout: timeout}
}

// Create crea un nuevo producto. El precio debe ser mayor que cero y se guarda con 2 decimales.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	name, price, err := validateProduct(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	if err := uc.repo.Create(sctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza nombre, descripción y precio.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	name, price, err := validateProduct(in)
	if err != nil {
		return nil, err
	}
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = name
	product.Description = strings.TrimSpace(in.Description)
	product.Price = price
	product.UpdatedAt = time.Now()
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	if err := uc.repo.Update(sctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.Normalize()
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	list, err := uc.repo.List(sctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	return uc.repo.Delete(sctx, id)
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	product, err := uc.repo.GetByID(sctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func validateProduct(in dto.ProductRequest) (string, decimal.Decimal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == nil || !in.Price.GreaterThan(decimal.Zero) {
		return "", decimal.Zero, domain.ErrInvalidInput
	}
	return name, in.Price.Round(2), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
	}
}
