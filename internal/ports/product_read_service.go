package ports

import (
	"context"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
)

// SKUChecker — полная проверка SKU: код продавца, формат, уникальность.
type SKUChecker interface {
	CheckSKU(ctx context.Context, check domain.SKUCheck) (*domain.SKUReport, error)
}

// ProductReadService — сервис для HTTP-слоя.
type ProductReadService interface {
	SKUChecker

	GetProduct(ctx context.Context, sku string) (*domain.Product, error)
	ProductsByMerchant(ctx context.Context, merchantCode string, limit, offset int) ([]*domain.Product, error)
}
