package billing

import (
	"context"
	"time"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
)

// ReceiptPDFGenerator genera la representación gráfica (PDF) de un cupón fiscal.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *entity.Receipt) ([]byte, error)
}

// DefaultStoreTimeout tope de cada llamada al repositorio si no se configura otro.
const DefaultStoreTimeout = 5 * time.Second

func storeCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
