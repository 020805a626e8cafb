package rest

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/wb_catalog/pkg/httpx"
)

// NewRouter — gin.Engine со всеми маршрутами каталога.
// otelServiceName != "" включает otelgin; staticDir != "" раздаёт статику.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) { httpx.AbortMessage(c, http.StatusNotFound, "not found") })
	r.NoMethod(func(c *gin.Context) { httpx.AbortMessage(c, http.StatusMethodNotAllowed, "method not allowed") })

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/sku/validate", h.validateSKU)
	// SKU может содержать "/", поэтому параметр — wildcard.
	r.GET("/product/*sku", h.getProduct)
	r.GET("/merchant/:code/products", h.listMerchantProducts)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}
	return r
}
