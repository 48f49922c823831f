package repository

import (
	"context"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// SaleRepository persiste los cupones fiscales (colección de ventas).
// Los cupones no se actualizan ni se eliminan.
type SaleRepository interface {
	// Create guarda el cupón y asigna receipt.ID.
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id string) (*entity.Receipt, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Receipt, error)
}
