package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/infrastructure/memory"
)

func TestCustomerRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()

	require.NoError(t, repo.Create(ctx, &entity.Customer{ID: "c2", Name: "Bruno", CPF: "11144477735"}))
	require.NoError(t, repo.Create(ctx, &entity.Customer{ID: "c1", Name: "Ana", CPF: "52998224725"}))

	err := repo.Create(ctx, &entity.Customer{ID: "c3", Name: "Outra", CPF: "52998224725"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "CPF repetido debe rechazarse")

	got, err := repo.GetByCPF(ctx, "52998224725")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ID)

	list, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name, "la lista se ordena por nombre")

	list, err = repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bruno", list[0].Name)

	require.NoError(t, repo.Update(ctx, &entity.Customer{ID: "c1", Name: "Ana Maria", CPF: "52998224725"}))
	got, err = repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)

	require.NoError(t, repo.Delete(ctx, "c1"))
	assert.ErrorIs(t, repo.Delete(ctx, "c1"), domain.ErrNotFound)
	got, err = repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepo_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", Name: "Caneta", Price: decimal.RequireFromString("2.50")}))

	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	p.Name = "alterado"

	again, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Caneta", again.Name, "modificar el resultado no debe alterar el repositorio")

	assert.ErrorIs(t, repo.Update(ctx, &entity.Product{ID: "nope"}), domain.ErrNotFound)
}

func TestSaleRepo_AsignaIDYOrdenaRecientesPrimero(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSaleRepository()

	first := &entity.Receipt{Customer: entity.CustomerSnapshot{Name: "Ana"}}
	second := &entity.Receipt{Customer: entity.CustomerSnapshot{Name: "Bruno"}}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, repo.Count())

	list, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bruno", list[0].Customer.Name)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Customer.Name)

	empty, err := repo.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepos_RespetanContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.NewProductRepository().GetByID(ctx, "p1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, memory.NewSaleRepository().Create(ctx, &entity.Receipt{}), context.Canceled)
}
