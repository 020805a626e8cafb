// Пакет sku — проверка и классификация SKU товаров продавца.
//
// Порядок проверок (до первой ошибки): длина → префикс "<код>_" и вид SKU → грамматика суффикса.
// Пакет не обращается к хранилищу; уникальность SKU проверяет вызывающий код.
package sku

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
	"github.com/Gunvolt24/wb_catalog/pkg/fulfillment"
)

// Проверка, что Validator удовлетворяет интерфейсу SKUValidator.
var _ ports.SKUValidator = (*Validator)(nil)

// Validator — проверка SKU; безопасен для конкурентного использования.
type Validator struct {
	detector ports.FulfillmentDetector
}

// NewValidator — конструктор; detector == nil → fulfillment.Detector.
func NewValidator(detector ports.FulfillmentDetector) *Validator {
	if detector == nil {
		detector = fulfillment.Detector{}
	}
	return &Validator{detector: detector}
}

var defaultValidator = NewValidator(nil)

// Validate — проверка с распознаванием fulfillment SKU по умолчанию.
func Validate(sku, merchantCode string, maxLength int) (domain.Classification, error) {
	return defaultValidator.check(sku, merchantCode, maxLength)
}

// Validate — проверяет SKU продавца merchantCode.
// Длина считается в символах (рунах); maxLength <= 0 отключает проверку длины.
// Ошибки: *TooLongError, *BadPrefixError, *BadSuffixError (все оборачивают ErrInvalidSKU).
func (v *Validator) Validate(_ context.Context, sku, merchantCode string, maxLength int) (domain.Classification, error) {
	return v.check(sku, merchantCode, maxLength)
}

func (v *Validator) check(sku, merchantCode string, maxLength int) (domain.Classification, error) {
	if maxLength > 0 && utf8.RuneCountInString(sku) > maxLength {
		return domain.Classification{}, &TooLongError{Max: maxLength}
	}

	c, err := v.decompose(sku, merchantCode)
	if err != nil {
		return domain.Classification{}, err
	}

	if rule := checkSuffix(c.Suffix); rule != "" {
		return domain.Classification{}, &BadSuffixError{Suffix: c.Suffix, Rule: rule}
	}
	return c, nil
}

// decompose — проверка префикса и выделение суффикса.
// Для fulfillment SKU суффикс — всё после последнего "_" во всей строке,
// иначе — всё после "<код>_".
func (v *Validator) decompose(sku, merchantCode string) (domain.Classification, error) {
	prefix := merchantCode + "_"
	if !strings.HasPrefix(sku, prefix) || len(sku) == len(prefix) {
		return domain.Classification{}, &BadPrefixError{SKU: sku, Expected: prefix}
	}

	if v.detector.IsFulfillmentSKU(sku) {
		return domain.Classification{
			Kind:   domain.SKUFulfillment,
			Stages: max(v.detector.Stages(sku), 1),
			Suffix: sku[strings.LastIndexByte(sku, '_')+1:],
		}, nil
	}

	return domain.Classification{
		Kind:   domain.SKUStandard,
		Suffix: sku[len(prefix):],
	}, nil
}
