package ports

import (
	"context"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
)

// SKUIndex — проверка уникальности SKU в каталоге.
type SKUIndex interface {
	ExistsSKU(ctx context.Context, sku string) (bool, error)
}

type ProductRepository interface {
	SKUIndex

	// Save — вставка товара; занятый SKU → domain.ErrDuplicateSKU.
	Save(ctx context.Context, product *domain.Product) error
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	ListByMerchant(ctx context.Context, merchantCode string, limit, offset int) ([]*domain.Product, error)
	LastN(ctx context.Context, n int) ([]*domain.Product, error)
}
