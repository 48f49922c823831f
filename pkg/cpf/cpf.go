// Package cpf valida y formatea el CPF (Cadastro de Pessoas Físicas, Brasil).
// El CPF tiene 11 dígitos: 9 de base y 2 dígitos verificadores calculados con módulo 11.
package cpf

import (
	"fmt"
	"unicode"
)

// Length cantidad de dígitos de un CPF completo.
const Length = 11

// IsValid indica si raw (con o sin máscara "000.000.000-00") es un CPF con
// dígitos verificadores correctos. Nunca falla: entradas mal formadas devuelven false.
func IsValid(raw string) bool {
	digits := Digits(raw)
	if len(digits) != Length {
		return false
	}
	first, second := checkDigits(digits[:9])
	return digits[9] == first && digits[10] == second
}

// Digits devuelve solo los dígitos ASCII de s.
func Digits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// Format aplica la máscara 000.000.000-00. Si no hay 11 dígitos devuelve los dígitos sin máscara.
func Format(raw string) string {
	d := Digits(raw)
	if len(d) != Length {
		return d
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// Complete calcula los dos dígitos verificadores para una base de 9 dígitos
// y devuelve el CPF de 11 dígitos.
func Complete(base string) (string, error) {
	d := Digits(base)
	if len(d) != 9 {
		return "", fmt.Errorf("cpf: se requieren 9 dígitos de base, se encontraron %d", len(d))
	}
	first, second := checkDigits(d)
	return d + string([]byte{first, second}), nil
}

// checkDigits calcula ambos verificadores sobre los 9 dígitos de base.
// Primer dígito: pesos 10..2; segundo: pesos 11..2 incluyendo el primero.
func checkDigits(base string) (byte, byte) {
	first := verifier(base, 10)
	second := verifier(base+string(first), 11)
	return first, second
}

func verifier(digits string, startWeight int) byte {
	var sum int
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (startWeight - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return byte('0' + remainder)
}
