package domain

import "time"

// Product — товар каталога продавца.
type Product struct {
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	MerchantCode string    `json:"merchant_code,omitempty"`
	OwnerID      string    `json:"owner_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Merchant — продавец; Code используется как обязательный префикс SKU.
type Merchant struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
