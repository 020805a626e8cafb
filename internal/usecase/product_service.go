package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
)

// Проверка, что ProductService удовлетворяет интерфейсу ProductReadService.
var _ ports.ProductReadService = (*ProductService)(nil)

// ProductService — прикладная логика каталога товаров (без знаний о транспорте).
type ProductService struct {
	repo    ports.ProductRepository // прямой доступ к хранилищу
	cache   ports.ProductCache      // прямой доступ к кэшу
	log     ports.Logger            // прямой доступ к логгеру
	checker ports.SKUChecker        // проверка SKU (формат + уникальность)
}

// NewProductService — DI-конструктор.
func NewProductService(
	repo ports.ProductRepository,
	cache ports.ProductCache,
	log ports.Logger,
	checker ports.SKUChecker,
) *ProductService {
	return &ProductService{
		repo:    repo,
		cache:   cache,
		log:     log,
		checker: checker,
	}
}

// CheckSKU — проксирование в SKUChecker.
func (s *ProductService) CheckSKU(ctx context.Context, check domain.SKUCheck) (*domain.SKUReport, error) {
	return s.checker.CheckSKU(ctx, check)
}

// GetProduct — получить товар по SKU: сначала из кэша, при промахе — из БД с записью в кэш.
// Возвращает (*Product, nil) или (nil, nil), если записи нет.
func (s *ProductService) GetProduct(ctx context.Context, sku string) (*domain.Product, error) {
	if product, found := s.cache.Get(ctx, sku); found {
		s.log.Infof(ctx, "cache hit for sku=%q", sku)
		return product, nil
	}
	s.log.Infof(ctx, "cache miss for sku=%q", sku)

	start := time.Now()
	product, err := s.repo.GetBySKU(ctx, sku)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetBySKU failed sku=%q err=%v", sku, err)
		return nil, err
	}

	if product != nil {
		if setErr := s.cache.Set(ctx, product); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed sku=%q err=%v", sku, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch sku=%q took=%s", sku, time.Since(start))
	return product, nil
}

// ProductsByMerchant — проксирование в репозиторий (пагинация уже валидирована на верхнем уровне).
func (s *ProductService) ProductsByMerchant(
	ctx context.Context,
	merchantCode string,
	limit, offset int,
) ([]*domain.Product, error) {
	return s.repo.ListByMerchant(ctx, merchantCode, limit, offset)
}

// SaveFromMessage — сохранить товар, пришедший из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. проверка SKU (код продавца, формат, уникальность);
//  3. сохранение в БД;
//  4. положить запись в кэш.
//
// Ошибки данных оборачивают domain.ErrInvalidProduct (повтор не поможет),
// остальные — временные.
func (s *ProductService) SaveFromMessage(ctx context.Context, raw []byte) error {
	var product domain.Product
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&product); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %w", domain.ErrInvalidProduct, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", domain.ErrInvalidProduct)
	}

	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: name is required sku=%q", domain.ErrInvalidProduct, product.SKU)
	}

	report, err := s.checker.CheckSKU(ctx, domain.SKUCheck{
		SKU:          product.SKU,
		MerchantCode: product.MerchantCode,
		OwnerID:      product.OwnerID,
	})
	if err != nil {
		if IsPermanent(err) {
			return fmt.Errorf("%w: %w", domain.ErrInvalidProduct, err)
		}
		return fmt.Errorf("check sku: %w", err)
	}

	product.MerchantCode = report.MerchantCode
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Save(ctx, &product); err != nil {
		// Между проверкой и вставкой SKU мог занять другой товар.
		if IsPermanent(err) {
			s.log.Warnf(ctx, "repo.Save rejected sku=%q err=%v", product.SKU, err)
			return fmt.Errorf("%w: %w", domain.ErrInvalidProduct, err)
		}
		s.log.Errorf(ctx, "repo.Save failed sku=%q err=%v", product.SKU, err)
		return fmt.Errorf("failed to save product: %w", err)
	}

	if err := s.cache.Set(ctx, &product); err != nil {
		s.log.Warnf(ctx, "cache.Set failed sku=%q err=%v", product.SKU, err)
	}

	s.log.Infof(ctx, "product saved sku=%q merchant=%s kind=%s", product.SKU, product.MerchantCode, report.Kind)
	return nil
}

// WarmUpCache — прогрев кэша последними N товарами из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *ProductService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d products in %s", len(list), time.Since(start))
	return nil
}
