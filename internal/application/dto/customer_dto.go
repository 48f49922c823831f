package dto

// CustomerRequest body para POST/PUT /clientes. cpf acepta la máscara 000.000.000-00.
type CustomerRequest struct {
	Name string `json:"nome" validate:"required"`
	CPF  string `json:"cpf" validate:"required,cpf"`
}

// CustomerResponse cliente en respuestas. cpf sale con sus 11 dígitos.
type CustomerResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	CPF  string `json:"cpf"`
}
