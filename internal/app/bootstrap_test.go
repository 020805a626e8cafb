package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Gunvolt24/wb_catalog/pkg/logger"
)

func TestApplyGinMode(t *testing.T) {
	prev := gin.Mode()
	t.Cleanup(func() { gin.SetMode(prev) })

	core, logs := observer.New(zap.WarnLevel)
	logg := logger.FromZap(zap.New(core))
	ctx := context.Background()

	applyGinMode(ctx, " Release ", logg)
	require.Equal(t, gin.ReleaseMode, gin.Mode())

	applyGinMode(ctx, "test", logg)
	require.Equal(t, gin.TestMode, gin.Mode())

	applyGinMode(ctx, "", logg)
	require.Equal(t, gin.DebugMode, gin.Mode())
	require.Zero(t, logs.Len())

	applyGinMode(ctx, "turbo", logg)
	require.Equal(t, gin.DebugMode, gin.Mode())
	require.Equal(t, 1, logs.Len())
}

func TestNewMetricsServer(t *testing.T) {
	require.Nil(t, newMetricsServer("", time.Second))

	srv := newMetricsServer(":2112", time.Second)
	require.Equal(t, ":2112", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
