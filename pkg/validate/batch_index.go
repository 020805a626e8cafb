package validate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Gunvolt24/wb_catalog/internal/ports"
)

// Проверка, что BatchIndex удовлетворяет интерфейсу ports.SKUIndex.
var _ ports.SKUIndex = (*BatchIndex)(nil)

// BatchIndex — индекс уникальности SKU в пределах одного прогона.
// ExistsSKU вызывается последним шагом проверки, поэтому свободный SKU сразу занимается:
// второй такой же SKU в пакете получит ошибку уникальности.
type BatchIndex struct {
	mu    sync.Mutex
	taken map[string]struct{}
}

// NewBatchIndex — индекс с заранее занятыми SKU (например, выгрузкой каталога).
func NewBatchIndex(existing ...string) *BatchIndex {
	idx := &BatchIndex{taken: make(map[string]struct{}, len(existing))}
	for _, s := range existing {
		idx.taken[s] = struct{}{}
	}
	return idx
}

// LoadExisting — занять SKU из списка по одному на строку; пустые строки и # комментарии пропускаются.
func (b *BatchIndex) LoadExisting(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0

	b.mu.Lock()
	defer b.mu.Unlock()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		b.taken[line] = struct{}{}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("read existing skus: %w", err)
	}
	return n, nil
}

// ExistsSKU — true, если SKU уже занят; иначе занимает его.
func (b *BatchIndex) ExistsSKU(_ context.Context, sku string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.taken[sku]; ok {
		return true, nil
	}
	b.taken[sku] = struct{}{}
	return false, nil
}

// Len — число занятых SKU.
func (b *BatchIndex) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.taken)
}
