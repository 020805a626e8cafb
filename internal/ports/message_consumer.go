package ports

import "context"

// MessageConsumer — источник входящих товаров (Kafka).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
