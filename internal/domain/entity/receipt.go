package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de las líneas del cupón cuando el producto no los tiene.
const (
	DefaultItemName        = "Nome não disponível"
	DefaultItemDescription = "Descrição não disponível"
)

// Receipt es el cupón fiscal de una venta. Inmutable una vez persistido.
type Receipt struct {
	ID        string
	Customer  CustomerSnapshot
	Items     []ReceiptItem
	Total     decimal.Decimal // suma de los precios, redondeada a 2 decimales
	Paid      decimal.Decimal // valor pagado, redondeado a 2 decimales
	Change    decimal.Decimal // Paid - Total, redondeado a 2 decimales
	CreatedAt time.Time
}

// CustomerSnapshot copia del cliente al momento de la venta (no es una referencia viva).
type CustomerSnapshot struct {
	Name string
	CPF  string
}

// ReceiptItem línea del cupón (se persiste como JSON). UnitPrice es el precio del producto sin redondear.
type ReceiptItem struct {
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	UnitPrice   decimal.Decimal `json:"valor_unitario"`
}
