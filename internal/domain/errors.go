package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidCPF          = errors.New("CPF inválido")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrCustomerNotFound    = errors.New("cliente no encontrado")
	ErrInsufficientPayment = errors.New("valor pagado insuficiente para cubrir el total")
)

// ProductNotFoundError indica que uno de los productos de la venta no existe.
// Se reporta siempre el primero que falla, en el orden de la solicitud.
type ProductNotFoundError struct {
	ID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %s no encontrado", e.ID)
}

// Is permite errors.Is(err, ErrNotFound).
func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
