package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo persiste los cupones en la tabla vendas. Las líneas se guardan como JSONB.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, cliente_nome, cliente_cpf, itens, valor_total, valor_pago, troco, created_at`

// Create inserta el cupón y le asigna un ID nuevo.
func (r *SaleRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	items, err := json.Marshal(receipt.Items)
	if err != nil {
		return fmt.Errorf("serializar itens: %w", err)
	}
	id := uuid.New().String()
	query := `
		INSERT INTO vendas (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, query,
		id, receipt.Customer.Name, receipt.Customer.CPF, items,
		receipt.Total, receipt.Paid, receipt.Change, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	receipt.ID = id
	return nil
}

// GetByID obtiene un cupón por ID; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Receipt, error) {
	receipt, err := scanReceipt(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM vendas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return receipt, nil
}

// List lista cupones, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Receipt, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+saleColumns+` FROM vendas ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Receipt, 0)
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, receipt)
	}
	return list, rows.Err()
}

func scanReceipt(row pgx.Row) (*entity.Receipt, error) {
	var (
		rc    entity.Receipt
		items []byte
	)
	if err := row.Scan(
		&rc.ID, &rc.Customer.Name, &rc.Customer.CPF, &items,
		&rc.Total, &rc.Paid, &rc.Change, &rc.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &rc.Items); err != nil {
		return nil, fmt.Errorf("deserializar itens: %w", err)
	}
	return &rc, nil
}
