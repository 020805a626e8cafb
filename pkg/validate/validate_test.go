package validate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
	"github.com/Gunvolt24/wb_catalog/internal/usecase"
	"github.com/Gunvolt24/wb_catalog/pkg/logger"
	"github.com/Gunvolt24/wb_catalog/pkg/sku"
	"github.com/Gunvolt24/wb_catalog/pkg/validate"
)

func newChecker(t *testing.T, resolver ports.MerchantResolver, existing ...string) *usecase.SKUService {
	t.Helper()
	return usecase.NewSKUService(
		sku.NewValidator(nil),
		resolver,
		validate.NewBatchIndex(existing...),
		logger.FromZap(zaptest.NewLogger(t)),
		50,
	)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func decodeReports(t *testing.T, out string) []domain.SKUReport {
	t.Helper()
	var reports []domain.SKUReport
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var r domain.SKUReport
		require.NoError(t, json.Unmarshal([]byte(line), &r))
		reports = append(reports, r)
	}
	return reports
}

func TestValidateFile_JSONL_Mixed(t *testing.T) {
	content := strings.Join([]string{
		`{"sku":"AA_correct-sku","merchant_code":"AA"}`,
		``,
		`{"sku":"AA_wrong--sku","merchant_code":"AA"}`,
		`{"sku":"AA_F12_correct-sku","merchant_code":"AA"}`,
		`{"sku":"BB_x","merchant_code":"AA"}`,
		`{"sku":"AA_correct-sku","merchant_code":"AA"}`,
		`not json`,
	}, "\n")
	path := writeFile(t, "batch.jsonl", content)

	var out, rejects bytes.Buffer
	sum, err := validate.ValidateFile(context.Background(), newChecker(t, nil), path, validate.FormatAuto,
		validate.Sinks{Reports: &out, Rejects: &rejects})
	require.NoError(t, err)
	require.Equal(t, "2 valid / 4 invalid", sum.String())

	reports := decodeReports(t, out.String())
	require.Len(t, reports, 2)
	require.Equal(t, domain.SKUStandard, reports[0].Kind)
	require.Equal(t, domain.SKUFulfillment, reports[1].Kind)
	require.Equal(t, 1, reports[1].Stages)
	require.Equal(t, "correct-sku", reports[1].Suffix)

	rej := rejects.String()
	require.Contains(t, rej, "line 3: Product SKU suffix (wrong--sku)")
	require.Contains(t, rej, "line 5: Product SKU must start with AA_")
	require.Contains(t, rej, `line 6: the value of attribute "SKU" must be unique`)
	require.Contains(t, rej, "line 7: invalid record")
}

func TestValidateFile_JSON_SingleAndArray(t *testing.T) {
	ctx := context.Background()

	single := writeFile(t, "one.json", `{"sku":"AA_1","merchant_code":"AA"}`)
	var out bytes.Buffer
	sum, err := validate.ValidateFile(ctx, newChecker(t, nil), single, validate.FormatAuto, validate.Sinks{Reports: &out})
	require.NoError(t, err)
	require.Equal(t, validate.Summary{Valid: 1}, sum)

	array := writeFile(t, "many.json", `[
		{"sku":"AA_1","merchant_code":"AA"},
		{"sku":"AA_1","merchant_code":"AA"},
		{"sku":"AA_ok item","merchant_code":"AA"}
	]`)
	sum, err = validate.ValidateFile(ctx, newChecker(t, nil), array, validate.FormatAuto, validate.Sinks{})
	require.NoError(t, err)
	require.Equal(t, validate.Summary{Valid: 2, Invalid: 1}, sum)

	broken := writeFile(t, "broken.json", `[{"sku":`)
	sum, err = validate.ValidateFile(ctx, newChecker(t, nil), broken, validate.FormatJSON, validate.Sinks{})
	require.NoError(t, err)
	require.Equal(t, validate.Summary{Invalid: 1}, sum)
}

func TestValidateReader_ResolvesMerchants(t *testing.T) {
	resolver, err := validate.DecodeMerchants(strings.NewReader("owners:\n  owner-1: LP\n"))
	require.NoError(t, err)

	in := strings.NewReader(strings.Join([]string{
		`{"sku":"LP_abc","owner_id":"owner-1"}`,
		`{"sku":"LP_abc2","owner_id":"ghost"}`,
	}, "\n"))

	var rejects bytes.Buffer
	sum, err := validate.ValidateReader(context.Background(), newChecker(t, resolver), in, validate.FormatAuto,
		validate.Sinks{Rejects: &rejects})
	require.NoError(t, err)
	require.Equal(t, validate.Summary{Valid: 1, Invalid: 1}, sum)
	require.Contains(t, rejects.String(), "merchant not found")
}

func TestValidateReader_ExistingCatalog(t *testing.T) {
	in := strings.NewReader(`{"sku":"AA_taken","merchant_code":"AA"}`)
	sum, err := validate.ValidateReader(context.Background(), newChecker(t, nil, "AA_taken"), in, validate.FormatJSONL,
		validate.Sinks{})
	require.NoError(t, err)
	require.Equal(t, validate.Summary{Invalid: 1}, sum)
}

type failingChecker struct{}

func (failingChecker) CheckSKU(context.Context, domain.SKUCheck) (*domain.SKUReport, error) {
	return nil, errors.New("db down")
}

// Сбой зависимости — не отказ записи: поток прерывается ошибкой.
func TestValidateJSONLStream_DependencyFailureAborts(t *testing.T) {
	in := strings.NewReader(`{"sku":"AA_1","merchant_code":"AA"}`)
	_, err := validate.ValidateJSONLStream(context.Background(), failingChecker{}, in, validate.Sinks{})
	require.ErrorContains(t, err, "line 1: db down")
}

func TestDecodeCheck_Strict(t *testing.T) {
	for _, raw := range []string{
		`{"sku":"AA_1","color":"red"}`,
		`{"sku":"AA_1"} {"sku":"AA_2"}`,
		`{"merchant_code":"AA"}`,
		`[]`,
	} {
		_, err := validate.DecodeCheck([]byte(raw))
		require.ErrorIs(t, err, validate.ErrInvalidRecord, raw)
	}

	check, err := validate.DecodeCheck([]byte(`{"sku":"AA_1","merchant_code":"AA","owner_id":"o"}`))
	require.NoError(t, err)
	require.Equal(t, domain.SKUCheck{SKU: "AA_1", MerchantCode: "AA", OwnerID: "o"}, check)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]validate.InputFormat{
		"":       validate.FormatAuto,
		"auto":   validate.FormatAuto,
		" JSON ": validate.FormatJSON,
		"jsonl":  validate.FormatJSONL,
	} {
		got, err := validate.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := validate.ParseFormat("csv")
	require.Error(t, err)

	require.Equal(t, validate.FormatJSON, validate.FormatByExt("a/b.JSON"))
	require.Equal(t, validate.FormatJSONL, validate.FormatByExt("a/b.jsonl"))
	require.Equal(t, validate.FormatJSONL, validate.FormatByExt("a/b.txt"))
}
