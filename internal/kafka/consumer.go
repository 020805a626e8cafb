package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/wb_catalog/internal/ports"
	"github.com/Gunvolt24/wb_catalog/pkg/metrics"
)

// Проверка, что Consumer удовлетворяет интерфейсу ports.MessageConsumer.
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что Consumer использует от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageSaver — разбор, проверка SKU и сохранение товара из сообщения.
type messageSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — чтение топика товаров с доставкой at-least-once.
type Consumer struct {
	reader         reader
	service        messageSaver
	log            ports.Logger
	processTimeout time.Duration
	backoff        backoff
	closeOnce      sync.Once
}

// NewConsumer — конструктор поверх kafka.Reader.
func NewConsumer(cfg *ConsumerConfig, service messageSaver, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg.withDefaults(), service, log)
}

func newConsumer(r reader, cfg ConsumerConfig, service messageSaver, log ports.Logger) *Consumer {
	return &Consumer{
		reader:         r,
		service:        service,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		backoff: backoff{
			initial: cfg.RetryInitial,
			max:     cfg.RetryMax,
			rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		},
	}
}

// Run — цикл чтения до отмены контекста:
//   - товар сохранён или отвергнут навсегда (domain.ErrInvalidProduct) → коммит оффсета;
//   - временная ошибка → без коммита, пауза и повтор;
//   - ошибка FetchMessage → экспоненциальная пауза с jitter.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	fetchDelay := c.backoff.initial
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			pause := c.backoff.jitter(fetchDelay)
			c.log.Warnf(ctx, "fetch failed: %v (retry in %s)", err, pause)
			if !sleepCtx(ctx, pause) {
				return ctx.Err()
			}
			fetchDelay = c.backoff.next(fetchDelay)
			continue
		}
		fetchDelay = c.backoff.initial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.commit(ctx, &msg)
			continue
		}
		// Пауза перед повтором того же сообщения.
		if !sleepCtx(ctx, c.backoff.jitter(min(c.backoff.initial, 500*time.Millisecond))) {
			return ctx.Err()
		}
	}
}

// Close — закрыть reader; повторные вызовы ничего не делают.
func (c *Consumer) Close() (err error) {
	c.closeOnce.Do(func() {
		err = c.reader.Close()
	})
	return err
}
