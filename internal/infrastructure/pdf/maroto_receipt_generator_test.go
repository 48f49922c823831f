package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/infrastructure/pdf"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":        "R$ 0,00",
		"2.5":      "R$ 2,50",
		"17.5":     "R$ 17,50",
		"1234.567": "R$ 1.234,57",
		"1000000":  "R$ 1.000.000,00",
		"-3.1":     "-R$ 3,10",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.FormatBRL(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	gen := pdf.NewMarotoReceiptGenerator("PDV Teste")
	receipt := &entity.Receipt{
		ID:       "0b6f7c1e-3f0e-4d7a-9f59-7a0c1b2d3e4f",
		Customer: entity.CustomerSnapshot{Name: "Ana", CPF: "52998224725"},
		Items: []entity.ReceiptItem{
			{Name: "Caneta", Description: entity.DefaultItemDescription, UnitPrice: decimal.RequireFromString("2.50")},
			{Name: "Caderno", Description: entity.DefaultItemDescription, UnitPrice: decimal.RequireFromString("15.00")},
		},
		Total:     decimal.RequireFromString("17.50"),
		Paid:      decimal.RequireFromString("20.00"),
		Change:    decimal.RequireFromString("2.50"),
		CreatedAt: time.Date(2024, 11, 5, 14, 30, 0, 0, time.UTC),
	}

	out, err := gen.GenerateReceiptPDF(context.Background(), receipt)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el resultado debe ser un PDF")
}
