package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
)

// Проверка, что MerchantRepository удовлетворяет интерфейсу ports.MerchantResolver.
var _ ports.MerchantResolver = (*MerchantRepository)(nil)

// MerchantRepository — продавцы в Postgres.
type MerchantRepository struct {
	pool *pgxpool.Pool
}

// NewMerchantRepository — конструктор MerchantRepository.
func NewMerchantRepository(pool *pgxpool.Pool) *MerchantRepository {
	return &MerchantRepository{pool: pool}
}

// ResolveMerchantCode — код продавца по владельцу товара (id продавца).
// Нет такого продавца — domain.ErrMerchantNotFound.
func (r *MerchantRepository) ResolveMerchantCode(ctx context.Context, ownerID string) (string, error) {
	if ownerID == "" {
		return "", fmt.Errorf("%w: empty owner id", domain.ErrMerchantNotFound)
	}

	var code string
	err := r.pool.QueryRow(ctx, `SELECT code FROM merchants WHERE id = $1`, ownerID).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%w: owner_id=%q", domain.ErrMerchantNotFound, ownerID)
	}
	if err != nil {
		return "", fmt.Errorf("select merchant: %w", err)
	}
	return code, nil
}

// Save — создать или обновить продавца (upsert по id).
func (r *MerchantRepository) Save(ctx context.Context, m *domain.Merchant) error {
	if m == nil || m.ID == "" || m.Code == "" {
		return errors.New("merchant id and code are required")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO merchants (id, code, name, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			status = EXCLUDED.status
	`, m.ID, m.Code, m.Name, statusOrDefault(m.Status))
	if pgCode(err) == codeUniqueViolation {
		return fmt.Errorf("merchant code %q already taken", m.Code)
	}
	if err != nil {
		return fmt.Errorf("upsert merchant: %w", err)
	}
	return nil
}

func statusOrDefault(status string) string {
	if status == "" {
		return "active"
	}
	return status
}
