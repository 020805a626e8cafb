package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/wb_catalog/pkg/metrics"
)

// drop — удалить элемент из списка и индекса. Вызывается под мьютексом.
func (c *ProductCache) drop(elem *list.Element) {
	if elem == nil {
		return
	}
	delete(c.bySKU, elem.Value.(*item).sku)
	c.order.Remove(elem)
	metrics.CacheSize.Set(float64(len(c.bySKU)))
}

func (c *ProductCache) expired(it *item, now time.Time) bool {
	return c.ttl > 0 && now.After(it.expiresAt)
}

func (c *ProductCache) deadline(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// sweep — вычистить просроченные элементы с хвоста до первого живого.
// Попадание продлевает TTL и двигает элемент в голову, поэтому хвост всегда старше.
func (c *ProductCache) sweep(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for back := c.order.Back(); back != nil; back = c.order.Back() {
		if !c.expired(back.Value.(*item), now) {
			return
		}
		c.drop(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}
