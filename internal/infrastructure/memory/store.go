// Package memory implementa los repositorios en memoria (STORE_DRIVER=memory),
// útil para desarrollo local sin PostgreSQL y para tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.SaleRepository     = (*SaleRepo)(nil)
)

// CustomerRepo repositorio de clientes en memoria.
type CustomerRepo struct {
	mu        sync.RWMutex
	customers map[string]entity.Customer
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{customers: make(map[string]entity.Customer)}
}

func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.ID == customer.ID || c.CPF == customer.CPF {
			return domain.ErrDuplicate
		}
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) GetByCPF(ctx context.Context, cpf string) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.CPF == cpf {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	list := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		c := c
		list = append(list, &c)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})
	return page(list, limit, offset), nil
}

func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range r.customers {
		if c.ID != customer.ID && c.CPF == customer.CPF {
			return domain.ErrDuplicate
		}
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[string]entity.Product)}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		p := p
		list = append(list, &p)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})
	return page(list, limit, offset), nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// SaleRepo colección de cupones en memoria, en orden de inserción.
type SaleRepo struct {
	mu       sync.RWMutex
	receipts []entity.Receipt
}

// NewSaleRepository construye el repositorio vacío.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{}
}

// Create asigna un ID nuevo y guarda una copia del cupón.
func (r *SaleRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	receipt.ID = uuid.New().String()
	stored := *receipt
	stored.Items = append([]entity.ReceiptItem(nil), receipt.Items...)
	r.mu.Lock()
	r.receipts = append(r.receipts, stored)
	r.mu.Unlock()
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.receipts {
		if r.receipts[i].ID == id {
			found := r.receipts[i]
			return &found, nil
		}
	}
	return nil, nil
}

// List devuelve los cupones más recientes primero.
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	list := make([]*entity.Receipt, 0, len(r.receipts))
	for i := len(r.receipts) - 1; i >= 0; i-- {
		rc := r.receipts[i]
		list = append(list, &rc)
	}
	r.mu.RUnlock()
	return page(list, limit, offset), nil
}

// Count cantidad de cupones guardados.
func (r *SaleRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.receipts)
}

func page[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []T{}
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}
