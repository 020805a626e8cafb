package httpx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrBadPagination — limit/offset в query не являются неотрицательными числами.
var ErrBadPagination = errors.New("bad pagination")

// Page — страница выборки.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ParsePage — limit/offset из query.
// Отсутствующий limit = defaultLimit, слишком большой обрезается до maxLimit.
// Нечисловые и отрицательные значения — ErrBadPagination.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) (Page, error) {
	page := Page{Limit: min(max(defaultLimit, 1), maxLimit)}

	if raw, ok := c.GetQuery("limit"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return Page{}, fmt.Errorf("%w: limit=%q", ErrBadPagination, raw)
		}
		page.Limit = min(v, maxLimit)
	}
	if raw, ok := c.GetQuery("offset"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return Page{}, fmt.Errorf("%w: offset=%q", ErrBadPagination, raw)
		}
		page.Offset = v
	}
	return page, nil
}
