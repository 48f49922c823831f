package usecase

import (
	"context"
	"time"
)

// DefaultStoreTimeout tope de cada llamada al repositorio si no se configura otro.
const DefaultStoreTimeout = 5 * time.Second

func storeCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
