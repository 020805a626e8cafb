package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/wb_catalog/internal/domain"
	"github.com/Gunvolt24/wb_catalog/internal/ports"
	"github.com/Gunvolt24/wb_catalog/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_catalog/pkg/httpx"
	"github.com/Gunvolt24/wb_catalog/pkg/sku"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Handler — HTTP-обработчики каталога.
type Handler struct {
	service ports.ProductReadService
	log     ports.Logger
	timeout time.Duration // 0 — без собственного таймаута
}

// NewHandler — конструктор; timeout ограничивает время обращения к сервису.
func NewHandler(service ports.ProductReadService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// validateSKURequest — тело POST /sku/validate.
// Если merchant_code не задан, код продавца определяется по owner_id.
type validateSKURequest struct {
	SKU          string `json:"sku" binding:"required"`
	MerchantCode string `json:"merchant_code"`
	OwnerID      string `json:"owner_id"`
}

func (h *Handler) validateSKU(c *gin.Context) {
	var req validateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortMessage(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.MerchantCode == "" && strings.TrimSpace(req.OwnerID) == "" {
		httpx.AbortMessage(c, http.StatusBadRequest, "merchant_code or owner_id is required")
		return
	}

	ctx, cancel := h.withTimeout(ctxmeta.WithMerchantCode(c.Request.Context(), req.MerchantCode))
	defer cancel()

	report, err := h.service.CheckSKU(ctx, domain.SKUCheck{
		SKU:          req.SKU,
		MerchantCode: req.MerchantCode,
		OwnerID:      req.OwnerID,
	})
	if err != nil {
		h.writeCheckError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// writeCheckError — ошибка проверки SKU → HTTP-статус и тело с видом ошибки.
func (h *Handler) writeCheckError(c *gin.Context, err error) {
	var suffixErr *sku.BadSuffixError
	switch {
	case errors.As(err, &suffixErr):
		httpx.AbortJSON(c, http.StatusUnprocessableEntity, httpx.ErrorBody{
			Error: err.Error(), Kind: sku.Kind(err), Rule: string(suffixErr.Rule),
		})
	case errors.Is(err, sku.ErrInvalidSKU):
		httpx.AbortJSON(c, http.StatusUnprocessableEntity, httpx.ErrorBody{Error: err.Error(), Kind: sku.Kind(err)})
	case errors.Is(err, domain.ErrDuplicateSKU):
		httpx.AbortJSON(c, http.StatusConflict, httpx.ErrorBody{
			Error: domain.ErrDuplicateSKU.Error(), Kind: "duplicate_value",
		})
	case errors.Is(err, domain.ErrMerchantNotFound):
		httpx.AbortJSON(c, http.StatusNotFound, httpx.ErrorBody{
			Error: domain.ErrMerchantNotFound.Error(), Kind: "merchant_not_found",
		})
	default:
		h.internalError(c, "CheckSKU", err)
	}
}

func (h *Handler) getProduct(c *gin.Context) {
	skuParam := strings.TrimPrefix(c.Param("sku"), "/")
	if skuParam == "" {
		httpx.AbortMessage(c, http.StatusBadRequest, "empty sku")
		return
	}

	ctx, cancel := h.withTimeout(c.Request.Context())
	defer cancel()

	product, err := h.service.GetProduct(ctx, skuParam)
	if err != nil {
		h.internalError(c, "GetProduct sku="+skuParam, err)
		return
	}
	if product == nil {
		httpx.AbortMessage(c, http.StatusNotFound, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) listMerchantProducts(c *gin.Context) {
	code := c.Param("code")

	page, err := httpx.ParsePage(c, defaultPageLimit, maxPageLimit)
	if err != nil {
		httpx.AbortMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := h.withTimeout(ctxmeta.WithMerchantCode(c.Request.Context(), code))
	defer cancel()

	products, err := h.service.ProductsByMerchant(ctx, code, page.Limit, page.Offset)
	if err != nil {
		h.internalError(c, "ProductsByMerchant code="+code, err)
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

// internalError — 504 при истечении таймаута, иначе 500; детали только в лог.
func (h *Handler) internalError(c *gin.Context, op string, err error) {
	h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
	if errors.Is(err, context.DeadlineExceeded) {
		httpx.AbortMessage(c, http.StatusGatewayTimeout, "timeout")
		return
	}
	httpx.AbortMessage(c, http.StatusInternalServerError, "internal server error")
}
