package entity

import "time"

// Customer representa un cliente del PDV.
type Customer struct {
	ID        string
	Name      string
	CPF       string // 11 dígitos, sin máscara
	CreatedAt time.Time
	UpdatedAt time.Time
}
