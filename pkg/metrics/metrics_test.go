package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wb_catalog/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("products"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("products"))

	metrics.KafkaMessagesConsumed.WithLabelValues("products").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("products").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("products")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("products")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestSKUValidations_CountersByResult(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.SKUValidations.WithLabelValues("ok"))
	suffixBefore := testutil.ToFloat64(metrics.SKUValidations.WithLabelValues("bad_suffix"))

	metrics.SKUValidations.WithLabelValues("ok").Inc()
	metrics.SKUValidations.WithLabelValues("ok").Inc()

	if got := testutil.ToFloat64(metrics.SKUValidations.WithLabelValues("ok")); got != okBefore+2 {
		t.Fatalf("SKUValidations(ok): got=%v want=%v", got, okBefore+2)
	}
	if got := testutil.ToFloat64(metrics.SKUValidations.WithLabelValues("bad_suffix")); got != suffixBefore {
		t.Fatalf("SKUValidations(bad_suffix): got=%v want=%v", got, suffixBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}
