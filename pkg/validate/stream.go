package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
)

// Summary — итог проверки пакета записей.
type Summary struct {
	Valid   int
	Invalid int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

// Sinks — куда писать результаты: отчёты о корректных SKU (JSONL) и причины отказа.
// Nil-writer отключает соответствующий вывод.
type Sinks struct {
	Reports io.Writer
	Rejects io.Writer
}

func (s Sinks) report(r *domain.SKUReport) error {
	if s.Reports == nil {
		return nil
	}
	line, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := s.Reports.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (s Sinks) reject(where string, err error) {
	if s.Rejects != nil {
		fmt.Fprintf(s.Rejects, "%s: %v\n", where, err)
	}
}

// ValidateJSONLStream — по записи SKUCheck на строку; пустые строки пропускаются.
// Ошибка проверки записи не прерывает поток; прерывают только ошибки чтения/записи
// и сбои зависимостей (не ошибки данных).
func ValidateJSONLStream(ctx context.Context, checker ports.SKUChecker, in io.Reader, sinks Sinks) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		report, err := CheckFromJSON(ctx, checker, line)
		if err != nil {
			if !isDataError(err) {
				return sum, fmt.Errorf("line %d: %w", lineNo, err)
			}
			sum.Invalid++
			sinks.reject(fmt.Sprintf("line %d", lineNo), err)
			continue
		}
		if err := sinks.report(report); err != nil {
			return sum, err
		}
		sum.Valid++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}

// ValidateJSON — документ с одной записью или массивом записей.
func ValidateJSON(ctx context.Context, checker ports.SKUChecker, in io.Reader, sinks Sinks) (Summary, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return Summary{}, fmt.Errorf("read input: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	records := []json.RawMessage{raw}
	if len(raw) > 0 && raw[0] == '[' {
		records = nil
		if err := json.Unmarshal(raw, &records); err != nil {
			sinks.reject("document", fmt.Errorf("%w: %w", ErrInvalidRecord, err))
			return Summary{Invalid: 1}, nil
		}
	}

	var sum Summary
	for i, rec := range records {
		report, err := CheckFromJSON(ctx, checker, rec)
		if err != nil {
			if !isDataError(err) {
				return sum, fmt.Errorf("record %d: %w", i+1, err)
			}
			sum.Invalid++
			sinks.reject(fmt.Sprintf("record %d", i+1), err)
			continue
		}
		if err := sinks.report(report); err != nil {
			return sum, err
		}
		sum.Valid++
	}
	return sum, nil
}
