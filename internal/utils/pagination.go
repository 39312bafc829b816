// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PaginationResult describes a cumulative page: Data holds every item up to
// and including Page, and HasMore reports whether the listing continues.
type PaginationResult struct {
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Total   int         `json:"total"`
	HasMore bool        `json:"has_more"`
	Data    interface{} `json:"data"`
}

func GetPaginationParams(c *gin.Context, defaultLimit int) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	// Validate and set defaults
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}

	return PaginationParams{
		Page:  page,
		Limit: limit,
	}
}

func CreatePaginationResult(data interface{}, total int, hasMore bool, params PaginationParams) PaginationResult {
	return PaginationResult{
		Page:    params.Page,
		Limit:   params.Limit,
		Total:   total,
		HasMore: hasMore,
		Data:    data,
	}
}

func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.Itoa(result.Total))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.Limit))
	c.Header("X-Has-More", strconv.FormatBool(result.HasMore))
}
