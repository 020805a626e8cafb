package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
	"github.com/Gunvolt24/wb_catalog/pkg/sku"
)

// InputFormat — формат входных данных.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ParseFormat — формат из строки флага.
func ParseFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatJSONL:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want auto|json|jsonl)", s)
	}
}

// FormatByExt — формат по расширению файла; неизвестное расширение считается JSONL.
func FormatByExt(path string) InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatJSONL
}

// ValidateFile — проверить файл; FormatAuto определяется по расширению.
func ValidateFile(
	ctx context.Context,
	checker ports.SKUChecker,
	path string,
	format InputFormat,
	sinks Sinks,
) (Summary, error) {
	if format == FormatAuto {
		format = FormatByExt(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, checker, file, format, sinks)
}

// ValidateReader — проверить поток в заданном формате; FormatAuto для потока означает JSONL.
func ValidateReader(
	ctx context.Context,
	checker ports.SKUChecker,
	in io.Reader,
	format InputFormat,
	sinks Sinks,
) (Summary, error) {
	switch format {
	case FormatJSON:
		return ValidateJSON(ctx, checker, in, sinks)
	case FormatJSONL, FormatAuto:
		return ValidateJSONLStream(ctx, checker, in, sinks)
	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// isDataError — отказ по содержимому записи (а не сбой окружения).
func isDataError(err error) bool {
	return errors.Is(err, ErrInvalidRecord) ||
		errors.Is(err, sku.ErrInvalidSKU) ||
		errors.Is(err, domain.ErrDuplicateSKU) ||
		errors.Is(err, domain.ErrMerchantNotFound)
}
