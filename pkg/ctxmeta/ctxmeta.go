// Package ctxmeta — метаданные запроса в context.Context: request_id, код продавца, trace/span.
// HTTP-слой, потребитель Kafka и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

// Ключи контекста; собственный тип исключает коллизии со строковыми ключами.
const (
	KeyRequestID    ctxKey = "request_id"
	KeyMerchantCode ctxKey = "merchant_code"
)

// WithRequestID — положить request_id в контекст; пустое значение игнорируется.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext — request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return get(ctx, KeyRequestID)
}

// WithMerchantCode — положить код продавца, для которого идёт проверка SKU.
func WithMerchantCode(ctx context.Context, code string) context.Context {
	return with(ctx, KeyMerchantCode, code)
}

// MerchantCodeFromContext — код продавца из контекста.
func MerchantCodeFromContext(ctx context.Context) (string, bool) {
	return get(ctx, KeyMerchantCode)
}

func with(ctx context.Context, key ctxKey, value string) context.Context {
	if ctx == nil || value == "" {
		return ctx
	}
	return context.WithValue(ctx, key, value)
}

func get(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(key).(string)
	return v, ok && v != ""
}
