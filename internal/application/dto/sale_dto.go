package dto

import "github.com/shopspring/decimal"

// SaleRequest body para POST /pdv.
// Produtos admite IDs repetidos: cada repetición es una línea del cupón.
type SaleRequest struct {
	CustomerID string           `json:"clienteId" validate:"required"`
	ProductIDs []string         `json:"produtos" validate:"required,min=1"`
	Paid       *decimal.Decimal `json:"valorPago" validate:"required"`
}

// ReceiptResponse cupón fiscal devuelto al crear o consultar una venta.
type ReceiptResponse struct {
	Customer ReceiptCustomerResponse `json:"cliente"`
	Items    []ReceiptItemResponse   `json:"itens"`
	Total    float64                 `json:"valor_total"`
	Paid     float64                 `json:"valor_pago"`
	Change   float64                 `json:"troco"`
	ID       string                  `json:"id"`
}

// ReceiptCustomerResponse snapshot del cliente dentro del cupón.
type ReceiptCustomerResponse struct {
	Name string `json:"nome"`
	CPF  string `json:"cpf"`
}

// ReceiptItemResponse línea del cupón; valor_unitario es el precio sin redondear.
type ReceiptItemResponse struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	UnitPrice   float64 `json:"valor_unitario"`
}
