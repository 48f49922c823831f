// Package sale contiene el cálculo del cupón fiscal del PDV (servicio de dominio puro).
package sale

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// Calculate arma el cupón a partir del cliente y de los productos ya obtenidos,
// en el mismo orden (y con los mismos duplicados) de la solicitud.
//
// La suma se hace sin redondear; solo Total, Paid y Change se redondean a 2 decimales.
// Si paid < total devuelve domain.ErrInsufficientPayment (el valor exacto es aceptado).
// No modifica customer ni products.
func Calculate(customer *entity.Customer, products []*entity.Product, paid decimal.Decimal) (*entity.Receipt, error) {
	items := make([]entity.ReceiptItem, 0, len(products))
	total := decimal.Zero
	for _, p := range products {
		item := Line(p)
		items = append(items, item)
		total = total.Add(item.UnitPrice)
	}

	if paid.LessThan(total) {
		return nil, domain.ErrInsufficientPayment
	}

	return &entity.Receipt{
		Customer: entity.CustomerSnapshot{
			Name: customer.Name,
			CPF:  customer.CPF,
		},
		Items:  items,
		Total:  total.Round(2),
		Paid:   paid.Round(2),
		Change: paid.Sub(total).Round(2),
	}, nil
}

// Line convierte un producto en línea de cupón aplicando los valores por defecto.
func Line(p *entity.Product) entity.ReceiptItem {
	item := entity.ReceiptItem{
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.Price,
	}
	if item.Name == "" {
		item.Name = entity.DefaultItemName
	}
	if item.Description == "" {
		item.Description = entity.DefaultItemDescription
	}
	return item
}
