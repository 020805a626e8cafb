package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
	"github.com/Gunvolt24/wb_catalog/pkg/metrics"
)

// Проверка, что ProductCache удовлетворяет интерфейсу ports.ProductCache.
var _ ports.ProductCache = (*ProductCache)(nil)

// item — элемент списка LRU.
type item struct {
	sku       string
	product   domain.Product
	expiresAt time.Time
}

// ProductCache — LRU-кэш товаров с TTL, ключ — SKU.
// Голова списка — самый свежий элемент, хвост — кандидат на вытеснение.
// Нулевой или отрицательный TTL отключает истечение.
type ProductCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	order *list.List
	bySKU map[string]*list.Element
}

// NewProductCache — конструктор; capacity < 1 приводится к 1.
func NewProductCache(capacity int, ttl time.Duration) *ProductCache {
	if capacity < 1 {
		capacity = 1
	}
	return &ProductCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		order:    list.New(),
		bySKU:    make(map[string]*list.Element, capacity),
	}
}

// Get — копия товара по SKU; попадание продлевает TTL.
func (c *ProductCache) Get(_ context.Context, sku string) (*domain.Product, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.bySKU[sku]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	it := elem.Value.(*item)
	if c.expired(it, now) {
		c.drop(elem)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		return nil, false
	}

	it.expiresAt = c.deadline(now)
	c.order.MoveToFront(elem)
	metrics.CacheOps.WithLabelValues("hit").Inc()

	product := it.product
	return &product, true
}

// Set — добавить или обновить товар. Товар без SKU игнорируется.
func (c *ProductCache) Set(_ context.Context, product *domain.Product) error {
	if product == nil || product.SKU == "" {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.bySKU[product.SKU]; ok {
		it := elem.Value.(*item)
		it.product = *product
		it.expiresAt = c.deadline(now)
		c.order.MoveToFront(elem)
		return nil
	}

	c.sweep(now)

	c.bySKU[product.SKU] = c.order.PushFront(&item{
		sku:       product.SKU,
		product:   *product,
		expiresAt: c.deadline(now),
	})

	for c.order.Len() > c.capacity {
		c.drop(c.order.Back())
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
	metrics.CacheSize.Set(float64(len(c.bySKU)))
	return nil
}

// WarmUp — загрузить список товаров; первый в списке окажется самым старым.
func (c *ProductCache) WarmUp(ctx context.Context, products []*domain.Product) error {
	for _, product := range products {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

// Len — текущее число элементов, включая ещё не вычищенные просроченные.
func (c *ProductCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
