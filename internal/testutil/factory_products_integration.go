//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeMerchant — продавец с уникальными id и кодом.
func MakeMerchant(opts ...func(*domain.Merchant)) domain.Merchant {
	m := domain.Merchant{
		ID:     "mer-" + UniqSuffix(),
		Code:   "M" + strings.ToUpper(randHex(3)),
		Name:   "Test merchant",
		Status: "active",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// MakeProduct — товар продавца m с корректным уникальным SKU.
func MakeProduct(m domain.Merchant, opts ...func(*domain.Product)) domain.Product {
	p := domain.Product{
		SKU:          m.Code + "_item-" + UniqSuffix(),
		Name:         "Widget",
		MerchantCode: m.Code,
		OwnerID:      m.ID,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func WithSKU(sku string) func(*domain.Product) {
	return func(p *domain.Product) { p.SKU = sku }
}

func WithCreatedAt(t time.Time) func(*domain.Product) {
	return func(p *domain.Product) { p.CreatedAt = t }
}

// AsOwnerOnly — сообщение без кода продавца: код определяется по владельцу.
func AsOwnerOnly() func(*domain.Product) {
	return func(p *domain.Product) { p.MerchantCode = "" }
}
