package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
	"github.com/Gunvolt24/wb_catalog/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_catalog/pkg/metrics"
	"github.com/Gunvolt24/wb_catalog/pkg/sku"
)

var tracer = otel.Tracer("github.com/Gunvolt24/wb_catalog/internal/usecase")

// Проверка, что SKUService удовлетворяет интерфейсу SKUChecker.
var _ ports.SKUChecker = (*SKUService)(nil)

// SKUService — проверка SKU перед сохранением товара:
// определение кода продавца → проверка формата → проверка уникальности.
type SKUService struct {
	validator ports.SKUValidator
	resolver  ports.MerchantResolver
	index     ports.SKUIndex
	log       ports.Logger
	maxLength int
}

// NewSKUService — DI-конструктор.
func NewSKUService(
	validator ports.SKUValidator,
	resolver ports.MerchantResolver,
	index ports.SKUIndex,
	log ports.Logger,
	maxLength int,
) *SKUService {
	return &SKUService{
		validator: validator,
		resolver:  resolver,
		index:     index,
		log:       log,
		maxLength: maxLength,
	}
}

// CheckSKU — возвращает отчёт о корректном и свободном SKU.
// Ошибки: domain.ErrMerchantNotFound, ошибки пакета sku (ErrInvalidSKU), domain.ErrDuplicateSKU,
// прочие — сбои хранилища.
func (s *SKUService) CheckSKU(ctx context.Context, check domain.SKUCheck) (report *domain.SKUReport, err error) {
	ctx, span := tracer.Start(ctx, "SKUService.CheckSKU")
	span.SetAttributes(attribute.String("sku", check.SKU))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, resultLabel(err))
		} else {
			span.SetAttributes(attribute.String("sku.kind", string(report.Kind)))
		}
		span.End()
	}()

	merchantCode, err := s.merchantCode(ctx, check)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("merchant.code", merchantCode))
	ctx = ctxmeta.WithMerchantCode(ctx, merchantCode)

	classification, err := s.validator.Validate(ctx, check.SKU, merchantCode, s.maxLength)
	if err != nil {
		metrics.SKUValidations.WithLabelValues(resultLabel(err)).Inc()
		s.log.Warnf(ctx, "sku rejected sku=%q merchant=%s err=%v", check.SKU, merchantCode, err)
		return nil, err
	}

	// Уникальность — только после успешной проверки формата.
	exists, err := s.index.ExistsSKU(ctx, check.SKU)
	if err != nil {
		s.log.Errorf(ctx, "index.ExistsSKU failed sku=%q err=%v", check.SKU, err)
		return nil, fmt.Errorf("check sku uniqueness: %w", err)
	}
	if exists {
		metrics.SKUValidations.WithLabelValues("duplicate_value").Inc()
		s.log.Warnf(ctx, "sku rejected sku=%q merchant=%s: duplicate", check.SKU, merchantCode)
		return nil, domain.ErrDuplicateSKU
	}

	metrics.SKUValidations.WithLabelValues("ok").Inc()
	return domain.NewSKUReport(check.SKU, merchantCode, classification), nil
}

// merchantCode — явный код продавца или код владельца товара.
func (s *SKUService) merchantCode(ctx context.Context, check domain.SKUCheck) (string, error) {
	if check.MerchantCode != "" {
		return check.MerchantCode, nil
	}
	if s.resolver == nil {
		metrics.SKUValidations.WithLabelValues("merchant_not_found").Inc()
		return "", fmt.Errorf("%w: no merchant code and no resolver", domain.ErrMerchantNotFound)
	}

	code, err := s.resolver.ResolveMerchantCode(ctx, check.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			metrics.SKUValidations.WithLabelValues("merchant_not_found").Inc()
		}
		s.log.Warnf(ctx, "resolve merchant failed owner_id=%q err=%v", check.OwnerID, err)
		return "", fmt.Errorf("resolve merchant owner_id=%q: %w", check.OwnerID, err)
	}
	if code == "" {
		metrics.SKUValidations.WithLabelValues("merchant_not_found").Inc()
		return "", fmt.Errorf("%w: empty code for owner_id=%q", domain.ErrMerchantNotFound, check.OwnerID)
	}
	return code, nil
}

// resultLabel — метка метрики/спана по ошибке проверки.
func resultLabel(err error) string {
	if kind := sku.Kind(err); kind != "" {
		return kind
	}
	switch {
	case errors.Is(err, domain.ErrDuplicateSKU):
		return "duplicate_value"
	case errors.Is(err, domain.ErrMerchantNotFound):
		return "merchant_not_found"
	}
	return "error"
}

// IsPermanent — ошибка проверки, которую бессмысленно повторять.
func IsPermanent(err error) bool {
	return errors.Is(err, sku.ErrInvalidSKU) ||
		errors.Is(err, domain.ErrDuplicateSKU) ||
		errors.Is(err, domain.ErrMerchantNotFound)
}
