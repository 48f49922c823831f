package sale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/sale"
)

var ana = &entity.Customer{ID: "c1", Name: "Ana", CPF: "52998224725"}

func product(id, name string, price string) *entity.Product {
	return &entity.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func TestCalculate_TrocoYTotales(t *testing.T) {
	products := []*entity.Product{
		product("p1", "Caneta", "2.50"),
		product("p2", "Caderno", "15.00"),
	}

	receipt, err := sale.Calculate(ana, products, decimal.RequireFromString("20.00"))
	require.NoError(t, err)

	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("17.50")), "total: %s", receipt.Total)
	assert.True(t, receipt.Paid.Equal(decimal.RequireFromString("20")), "pago: %s", receipt.Paid)
	assert.True(t, receipt.Change.Equal(decimal.RequireFromString("2.5")), "troco: %s", receipt.Change)
	assert.Equal(t, entity.CustomerSnapshot{Name: "Ana", CPF: "52998224725"}, receipt.Customer)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, "Caneta", receipt.Items[0].Name)
	assert.Equal(t, "Caderno", receipt.Items[1].Name)
}

func TestCalculate_PagoExactoEsAceptado(t *testing.T) {
	products := []*entity.Product{product("p1", "Caneta", "2.50"), product("p2", "Caderno", "15.00")}

	receipt, err := sale.Calculate(ana, products, decimal.RequireFromString("17.50"))
	require.NoError(t, err)
	assert.True(t, receipt.Change.IsZero(), "troco debe ser 0, fue %s", receipt.Change)
}

func TestCalculate_PagoInsuficiente(t *testing.T) {
	products := []*entity.Product{product("p1", "Caneta", "2.50"), product("p2", "Caderno", "15.00")}

	receipt, err := sale.Calculate(ana, products, decimal.RequireFromString("10.00"))
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

func TestCalculate_PagoNegativoEsInsuficiente(t *testing.T) {
	products := []*entity.Product{product("p1", "Caneta", "0.01")}

	_, err := sale.Calculate(ana, products, decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

// Carrito de total cero con pago cero: se conserva la comparación estricta (0 < 0 es falso).
func TestCalculate_TotalCeroConPagoCero(t *testing.T) {
	products := []*entity.Product{{ID: "p1", Name: "Brinde"}}

	receipt, err := sale.Calculate(ana, products, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, receipt.Total.IsZero())
	assert.True(t, receipt.Change.IsZero())
}

func TestCalculate_ConservaOrdenYDuplicados(t *testing.T) {
	a := product("a", "A", "1.00")
	b := product("b", "B", "2.00")
	products := []*entity.Product{b, a, b, a, a}

	receipt, err := sale.Calculate(ana, products, decimal.NewFromInt(100))
	require.NoError(t, err)

	names := make([]string, 0, len(receipt.Items))
	for _, it := range receipt.Items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"B", "A", "B", "A", "A"}, names)
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(7)))
}

// El redondeo solo se aplica en la salida; las líneas conservan el precio original.
func TestCalculate_RedondeoSoloEnSalida(t *testing.T) {
	products := []*entity.Product{
		product("p1", "X", "0.333"),
		product("p2", "Y", "0.333"),
		product("p3", "Z", "0.333"),
	}

	receipt, err := sale.Calculate(ana, products, decimal.RequireFromString("1.005"))
	require.NoError(t, err)
	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("1.00")), "total: %s", receipt.Total)
	assert.True(t, receipt.Paid.Equal(decimal.RequireFromString("1.01")), "pago: %s", receipt.Paid)
	// 1.005 - 0.999 = 0.006
	assert.True(t, receipt.Change.Equal(decimal.RequireFromString("0.01")), "troco: %s", receipt.Change)
	assert.True(t, receipt.Items[0].UnitPrice.Equal(decimal.RequireFromString("0.333")))
}

func TestCalculate_ValoresPorDefecto(t *testing.T) {
	products := []*entity.Product{{ID: "p1"}}

	receipt, err := sale.Calculate(ana, products, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, entity.DefaultItemName, receipt.Items[0].Name)
	assert.Equal(t, entity.DefaultItemDescription, receipt.Items[0].Description)
	assert.True(t, receipt.Items[0].UnitPrice.IsZero())
}

func TestCalculate_NoModificaEntradas(t *testing.T) {
	p := product("p1", "", "3.00")
	_, err := sale.Calculate(ana, []*entity.Product{p}, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, "", p.Name)
	assert.Equal(t, "Ana", ana.Name)
}
