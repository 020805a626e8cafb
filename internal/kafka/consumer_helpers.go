package kafka

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/pkg/metrics"
)

// handleMessage — обработать сообщение; true, если оффсет нужно закоммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	processCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.SaveFromMessage(processCtx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, domain.ErrInvalidProduct):
		// повтор не поможет: SKU некорректен, занят или продавец неизвестен
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "product rejected partition=%d offset=%d key=%q: %v (skipped)",
			msg.Partition, msg.Offset, msg.Key, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed partition=%d offset=%d key=%q: %v (retry without commit)",
			msg.Partition, msg.Offset, msg.Key, err)
		return false
	}
}

func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
	}
}

// backoff — экспоненциальные паузы с equal jitter.
type backoff struct {
	initial time.Duration
	max     time.Duration
	rnd     *rand.Rand
}

// next — удвоенная пауза, не больше max.
func (b backoff) next(d time.Duration) time.Duration {
	return min(2*d, b.max)
}

// jitter — половина паузы фиксирована, вторая половина случайна.
func (b backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// sleepCtx — подождать d; false, если контекст отменён раньше.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
