package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/pdv-api/pkg/cpf"
)

// Validator valida los cuerpos de las peticiones según sus etiquetas `validate`.
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el validador y registra la regla "cpf".
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpf.IsValid(fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct valida s. Devuelve validator.ValidationErrors si alguna regla falla.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// failedTag devuelve la etiqueta de la primera regla fallida, o "" si err no es de validación.
func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

// failedFields lista los campos (nombre JSON en minúsculas) que no pasaron la validación.
func failedFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ""
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, strings.ToLower(fe.Field()))
	}
	return strings.Join(names, ", ")
}
