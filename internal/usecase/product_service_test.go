package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports/mocks"
	"github.com/Gunvolt24/wb_catalog/internal/usecase"
	"github.com/Gunvolt24/wb_catalog/pkg/sku"
)

const productSKU = "AA_correct-sku"

type serviceMocks struct {
	repo    *mocks.MockProductRepository
	cache   *mocks.MockProductCache
	checker *mocks.MockSKUChecker
	svc     *usecase.ProductService
}

func newServiceMocks(t *testing.T) serviceMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:    mocks.NewMockProductRepository(ctrl),
		cache:   mocks.NewMockProductCache(ctrl),
		checker: mocks.NewMockSKUChecker(ctrl),
	}
	m.svc = usecase.NewProductService(m.repo, m.cache, noopLogger{}, m.checker)
	return m
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestGetProduct_CacheHit(t *testing.T) {
	m := newServiceMocks(t)

	p := &domain.Product{SKU: productSKU}
	m.cache.EXPECT().Get(gomock.Any(), productSKU).Return(p, true)

	got, err := m.svc.GetProduct(context.Background(), productSKU)
	if err != nil || got == nil || got.SKU != productSKU {
		t.Fatalf("expected hit, got err=%v, product=%+v", err, got)
	}
}

func TestGetProduct_CacheMiss_FetchAndCache(t *testing.T) {
	m := newServiceMocks(t)

	p := &domain.Product{SKU: productSKU}
	gomock.InOrder(
		m.cache.EXPECT().Get(gomock.Any(), productSKU).Return(nil, false),
		m.repo.EXPECT().GetBySKU(gomock.Any(), productSKU).Return(p, nil),
		m.cache.EXPECT().Set(gomock.Any(), p),
	)

	got, err := m.svc.GetProduct(context.Background(), productSKU)
	if err != nil || got == nil || got.SKU != productSKU {
		t.Fatalf("expected product from repo, got err=%v, product=%+v", err, got)
	}
}

func TestGetProduct_NotFound_NoCacheSet(t *testing.T) {
	m := newServiceMocks(t)

	m.cache.EXPECT().Get(gomock.Any(), "missing").Return(nil, false)
	m.repo.EXPECT().GetBySKU(gomock.Any(), "missing").Return(nil, nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	got, err := m.svc.GetProduct(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", got, err)
	}
}

func TestSaveFromMessage_InvalidJSON_IsPermanent(t *testing.T) {
	m := newServiceMocks(t)

	for _, raw := range []string{"{", `{"sku":"AA_x","name":"n","color":"red"}`, `{"sku":"AA_x","name":"n"} {}`} {
		err := m.svc.SaveFromMessage(context.Background(), []byte(raw))
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("raw=%s: want ErrInvalidProduct, got %v", raw, err)
		}
	}
}

func TestSaveFromMessage_NameRequired(t *testing.T) {
	m := newServiceMocks(t)
	m.checker.EXPECT().CheckSKU(gomock.Any(), gomock.Any()).Times(0)

	err := m.svc.SaveFromMessage(context.Background(), mustJSON(t, domain.Product{SKU: productSKU, MerchantCode: "AA"}))
	if !errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("want ErrInvalidProduct, got %v", err)
	}
}

func TestSaveFromMessage_InvalidSKU_NotSaved(t *testing.T) {
	m := newServiceMocks(t)

	m.checker.EXPECT().CheckSKU(gomock.Any(), domain.SKUCheck{SKU: "BB_x", MerchantCode: "AA"}).
		Return(nil, &sku.BadPrefixError{SKU: "BB_x", Expected: "AA_"})
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	err := m.svc.SaveFromMessage(context.Background(), mustJSON(t, domain.Product{SKU: "BB_x", Name: "n", MerchantCode: "AA"}))
	if !errors.Is(err, domain.ErrInvalidProduct) || !errors.Is(err, sku.ErrInvalidSKU) {
		t.Fatalf("want ErrInvalidProduct wrapping ErrInvalidSKU, got %v", err)
	}
	var prefixErr *sku.BadPrefixError
	if !errors.As(err, &prefixErr) || prefixErr.Expected != "AA_" {
		t.Fatalf("typed prefix error must survive wrapping, got %v", err)
	}
}

func TestSaveFromMessage_CheckerTransientError(t *testing.T) {
	m := newServiceMocks(t)

	m.checker.EXPECT().CheckSKU(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	err := m.svc.SaveFromMessage(context.Background(), mustJSON(t, domain.Product{SKU: productSKU, Name: "n", MerchantCode: "AA"}))
	if err == nil || errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("want transient error, got %v", err)
	}
}

func TestSaveFromMessage_Success(t *testing.T) {
	m := newServiceMocks(t)

	created := time.Date(2025, 11, 26, 6, 22, 19, 0, time.UTC)
	raw := mustJSON(t, domain.Product{SKU: productSKU, Name: "Widget", OwnerID: "owner-1", CreatedAt: created})

	report := &domain.SKUReport{SKU: productSKU, MerchantCode: "AA", Kind: domain.SKUStandard, Suffix: "correct-sku"}
	gomock.InOrder(
		m.checker.EXPECT().CheckSKU(gomock.Any(), domain.SKUCheck{SKU: productSKU, OwnerID: "owner-1"}).Return(report, nil),
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Product) error {
			if p.MerchantCode != "AA" {
				t.Errorf("merchant code must be resolved before save, got %q", p.MerchantCode)
			}
			if !p.CreatedAt.Equal(created) {
				t.Errorf("created_at must be kept, got %v", p.CreatedAt)
			}
			return nil
		}),
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
	)

	if err := m.svc.SaveFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Гонка: SKU заняли между проверкой и вставкой.
func TestSaveFromMessage_DuplicateOnSave_IsPermanent(t *testing.T) {
	m := newServiceMocks(t)

	report := &domain.SKUReport{SKU: productSKU, MerchantCode: "AA", Kind: domain.SKUStandard}
	m.checker.EXPECT().CheckSKU(gomock.Any(), gomock.Any()).Return(report, nil)
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateSKU)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	err := m.svc.SaveFromMessage(context.Background(), mustJSON(t, domain.Product{SKU: productSKU, Name: "n", MerchantCode: "AA"}))
	if !errors.Is(err, domain.ErrInvalidProduct) || !errors.Is(err, domain.ErrDuplicateSKU) {
		t.Fatalf("want ErrInvalidProduct wrapping ErrDuplicateSKU, got %v", err)
	}
}

func TestSaveFromMessage_RepoFailureIsTransient(t *testing.T) {
	m := newServiceMocks(t)

	report := &domain.SKUReport{SKU: productSKU, MerchantCode: "AA", Kind: domain.SKUStandard}
	m.checker.EXPECT().CheckSKU(gomock.Any(), gomock.Any()).Return(report, nil)
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("conn reset"))

	err := m.svc.SaveFromMessage(context.Background(), mustJSON(t, domain.Product{SKU: productSKU, Name: "n", MerchantCode: "AA"}))
	if err == nil || errors.Is(err, domain.ErrInvalidProduct) {
		t.Fatalf("want transient error, got %v", err)
	}
}

func TestWarmUpCache(t *testing.T) {
	m := newServiceMocks(t)

	list := []*domain.Product{{SKU: "AA_1"}, {SKU: "AA_2"}}
	m.repo.EXPECT().LastN(gomock.Any(), 2).Return(list, nil)
	m.cache.EXPECT().WarmUp(gomock.Any(), list).Return(nil)

	if err := m.svc.WarmUpCache(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// n <= 0 — no-op
	if err := m.svc.WarmUpCache(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductsByMerchant_Proxy(t *testing.T) {
	m := newServiceMocks(t)

	list := []*domain.Product{{SKU: "AA_1"}}
	m.repo.EXPECT().ListByMerchant(gomock.Any(), "AA", 20, 40).Return(list, nil)

	got, err := m.svc.ProductsByMerchant(context.Background(), "AA", 20, 40)
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %+v, %v", got, err)
	}
}
