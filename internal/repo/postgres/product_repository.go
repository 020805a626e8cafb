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

// Проверка, что ProductRepository удовлетворяет интерфейсу ports.ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

const productColumns = `sku, name, merchant_code, owner_id, created_at`

// ProductRepository — товары в Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository — конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Save — вставка нового товара.
// Первичный ключ по sku — окончательная защита от гонок: нарушение уникальности
// возвращается как domain.ErrDuplicateSKU, неизвестный продавец — как domain.ErrMerchantNotFound.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	if product == nil || product.SKU == "" {
		return errors.New("product is empty or sku is required")
	}
	if product.MerchantCode == "" {
		return errors.New("merchant_code is required")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5)
	`, product.SKU, product.Name, product.MerchantCode, product.OwnerID, product.CreatedAt)

	switch pgCode(err) {
	case "":
	case codeUniqueViolation:
		return fmt.Errorf("insert product sku=%q: %w", product.SKU, domain.ErrDuplicateSKU)
	case codeForeignKeyViolation:
		return fmt.Errorf("insert product merchant=%q: %w", product.MerchantCode, domain.ErrMerchantNotFound)
	}
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetBySKU — товар по SKU. Если записи нет, возвращает (nil, nil).
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)

	product, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return product, nil
}

// ExistsSKU — занят ли SKU любым товаром каталога.
func (r *ProductRepository) ExistsSKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists sku: %w", err)
	}
	return exists, nil
}

// ListByMerchant — товары продавца, новые первыми; limit/offset — уже проверенная пагинация.
func (r *ProductRepository) ListByMerchant(
	ctx context.Context,
	merchantCode string,
	limit, offset int,
) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE merchant_code = $1
		ORDER BY created_at DESC, sku
		LIMIT $2 OFFSET $3
	`, merchantCode, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select merchant products: %w", err)
	}
	return collectProducts(rows)
}

// LastN — последние N товаров (для прогрева кэша).
func (r *ProductRepository) LastN(ctx context.Context, n int) ([]*domain.Product, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY created_at DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last products: %w", err)
	}
	return collectProducts(rows)
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.SKU, &p.Name, &p.MerchantCode, &p.OwnerID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// collectProducts — вычитать все строки и закрыть rows.
func collectProducts(rows pgx.Rows) ([]*domain.Product, error) {
	defer rows.Close()

	result := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product rows: %w", err)
	}
	return result, nil
}
