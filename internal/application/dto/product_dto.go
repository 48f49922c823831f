package dto

import "github.com/shopspring/decimal"

// ProductRequest body para POST/PUT /produtos. Los nombres de campo siguen al frontend.
type ProductRequest struct {
	Name        string           `json:"Nome" validate:"required"`
	Description string           `json:"Descricao"`
	Price       *decimal.Decimal `json:"Preco" validate:"required"`
}

// ProductResponse salida de un producto. Preco sale como número JSON.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"Nome"`
	Description string  `json:"Descricao,omitempty"`
	Price       float64 `json:"Preco"`
}
