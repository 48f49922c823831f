package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de un cupón ya emitido.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptPDFGenerator
	timeout   time.Duration
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator, timeout time.Duration) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, generator: generator, timeout: timeout}
}

// DownloadReceiptPDF recupera el cupón y genera su PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el cupón no existe.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, receiptID string) (pdfBytes []byte, filename string, err error) {
	sctx, cancel := storeCtx(ctx, uc.timeout)
	defer cancel()
	receipt, err := uc.saleRepo.GetByID(sctx, receiptID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cupom: %w", err)
	}
	if receipt == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, receipt)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("cupom-%s.pdf", receipt.ID), nil
}
