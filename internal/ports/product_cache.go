package ports

import (
	"context"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
)

// ProductCache — интерфейс кэша товаров.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type ProductCache interface {
	// Get — вернуть товар по SKU; (product, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, sku string) (*domain.Product, bool)

	// Set — сохранить/обновить товар в кэше.
	Set(ctx context.Context, product *domain.Product) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, products []*domain.Product) error
}
