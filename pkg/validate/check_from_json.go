package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
)

// ErrInvalidRecord — запись не разбирается как запрос на проверку SKU.
var ErrInvalidRecord = errors.New("invalid record")

// DecodeCheck — строгий разбор одной записи: неизвестные поля и данные после объекта запрещены.
func DecodeCheck(raw []byte) (domain.SKUCheck, error) {
	var check domain.SKUCheck
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&check); err != nil {
		return domain.SKUCheck{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return domain.SKUCheck{}, fmt.Errorf("%w: trailing data", ErrInvalidRecord)
	}
	if check.SKU == "" {
		return domain.SKUCheck{}, fmt.Errorf("%w: sku is required", ErrInvalidRecord)
	}
	return check, nil
}

// CheckFromJSON — разбор записи и полная проверка SKU.
func CheckFromJSON(ctx context.Context, checker ports.SKUChecker, raw []byte) (*domain.SKUReport, error) {
	check, err := DecodeCheck(raw)
	if err != nil {
		return nil, err
	}
	return checker.CheckSKU(ctx, check)
}
