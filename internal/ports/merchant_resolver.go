package ports

import "context"

// MerchantResolver — определяет код продавца по владельцу товара.
// Если продавец не найден — domain.ErrMerchantNotFound.
type MerchantResolver interface {
	ResolveMerchantCode(ctx context.Context, ownerID string) (string, error)
}
