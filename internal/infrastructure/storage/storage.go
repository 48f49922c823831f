// Package storage abre los repositorios según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/pdv-api/internal/domain/repository"
	"github.com/jhoicas/pdv-api/internal/infrastructure/memory"
	"github.com/jhoicas/pdv-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pdv-api/pkg/config"
	"github.com/jhoicas/pdv-api/pkg/logger"
)

// Stores agrupa los repositorios del driver configurado.
type Stores struct {
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
	Sales     repository.SaleRepository

	close func()
}

// Close libera la conexión subyacente, si la hay.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open construye los repositorios. Con el driver postgres aplica las migraciones
// embebidas cuando DB_AUTO_MIGRATE está activo.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
		return &Stores{
			Customers: memory.NewCustomerRepository(),
			Products:  memory.NewProductRepository(),
			Sales:     memory.NewSaleRepository(),
		}, nil
	case config.StoreDriverPostgres:
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
				return nil, err
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Customers: postgres.NewCustomerRepository(pool),
			Products:  postgres.NewProductRepository(pool),
			Sales:     postgres.NewSaleRepository(pool),
			close:     pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Store.Driver)
}
