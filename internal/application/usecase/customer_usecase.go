package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
	"github.com/jhoicas/pdv-api/pkg/cpf"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo    repository.CustomerRepository
	timeout time.Duration
}

// NewCustomerUseCase construye el caso de uso. timeout acota cada llamada al repositorio.
func NewCustomerUseCase(repo repository.CustomerRepository, timeout time.Duration) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, timeout: timeout}
}

// Create crea un nuevo cliente. El CPF se guarda sin máscara.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	name, digits, err := validateCustomer(in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.getByCPF(ctx, digits)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		CPF:       digits,
		CreatedAt: now,
		UpdatedAt: now,
	}
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	if err := uc.repo.Create(sctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.Normalize()
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	list, err := uc.repo.List(sctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza nombre y CPF de un cliente existente.
// Los cupones ya emitidos conservan su propio snapshot del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	name, digits, err := validateCustomer(in)
	if err != nil {
		return nil, err
	}
	customer, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	other, err := uc.getByCPF(ctx, digits)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != customer.ID {
		return nil, domain.ErrDuplicate
	}
	customer.Name = name
	customer.CPF = digits
	customer.UpdatedAt = time.Now()
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	if err := uc.repo.Update(sctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente. No afecta a los cupones emitidos.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	return uc.repo.Delete(sctx, id)
}

func (uc *CustomerUseCase) get(ctx context.Context, id string) (*entity.Customer, error) {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	customer, err := uc.repo.GetByID(sctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

func (uc *CustomerUseCase) getByCPF(ctx context.Context, digits string) (*entity.Customer, error) {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	return uc.repo.GetByCPF(sctx, digits)
}

func validateCustomer(in dto.CustomerRequest) (name, digits string, err error) {
	name = strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", domain.ErrInvalidInput
	}
	if !cpf.IsValid(in.CPF) {
		return "", "", domain.ErrInvalidCPF
	}
	return name, cpf.Digits(in.CPF), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:   c.ID,
		Name: c.Name,
		CPF:  c.CPF,
	}
}
