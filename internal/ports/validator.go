package ports

import (
	"context"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
)

// SKUValidator — проверка формата SKU (без обращений к хранилищу).
type SKUValidator interface {
	Validate(ctx context.Context, sku, merchantCode string, maxLength int) (domain.Classification, error)
}

// FulfillmentDetector — распознаёт SKU с маркерами fulfillment-складов (_F<digits>).
type FulfillmentDetector interface {
	IsFulfillmentSKU(sku string) bool
	Stages(sku string) int
}
