package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
)

// Проверка, что StaticResolver удовлетворяет интерфейсу ports.MerchantResolver.
var _ ports.MerchantResolver = (*StaticResolver)(nil)

// MerchantsFile — YAML-файл соответствия владелец → код продавца.
//
//	default: AA
//	owners:
//	  owner-1: LP
//	  owner-2: BB
type MerchantsFile struct {
	Default string            `yaml:"default"`
	Owners  map[string]string `yaml:"owners"`
}

// StaticResolver — MerchantResolver поверх заранее известной таблицы (для офлайн-проверки).
type StaticResolver struct {
	defaultCode string
	owners      map[string]string
}

// NewStaticResolver — резолвер по таблице; defaultCode используется для неизвестных владельцев.
func NewStaticResolver(defaultCode string, owners map[string]string) *StaticResolver {
	copied := make(map[string]string, len(owners))
	for owner, code := range owners {
		copied[owner] = code
	}
	return &StaticResolver{defaultCode: defaultCode, owners: copied}
}

// LoadMerchants — прочитать YAML-таблицу из файла.
func LoadMerchants(path string) (*StaticResolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open merchants file: %w", err)
	}
	defer f.Close()
	return DecodeMerchants(f)
}

// DecodeMerchants — разобрать YAML-таблицу; пустые коды запрещены.
func DecodeMerchants(r io.Reader) (*StaticResolver, error) {
	var file MerchantsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode merchants yaml: %w", err)
	}
	for owner, code := range file.Owners {
		if strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("merchants yaml: empty code for owner %q", owner)
		}
	}
	return NewStaticResolver(file.Default, file.Owners), nil
}

// WithDefault — копия резолвера с другим кодом по умолчанию (пустой код оставляет прежний).
func (r *StaticResolver) WithDefault(code string) *StaticResolver {
	if code == "" {
		return r
	}
	return &StaticResolver{defaultCode: code, owners: r.owners}
}

// ResolveMerchantCode — код продавца владельца или код по умолчанию.
func (r *StaticResolver) ResolveMerchantCode(_ context.Context, ownerID string) (string, error) {
	if code, ok := r.owners[ownerID]; ok {
		return code, nil
	}
	if r.defaultCode != "" {
		return r.defaultCode, nil
	}
	return "", fmt.Errorf("%w: owner_id=%q", domain.ErrMerchantNotFound, ownerID)
}
