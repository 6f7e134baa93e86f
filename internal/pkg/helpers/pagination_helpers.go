package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
)

const (
	// DefaultLimit is the page size used when the client sends none
	DefaultLimit = 100
	// MaxLimit caps the page size a client may request
	MaxLimit = 500
)

// GetPaginationParams extracts offset/limit query parameters with defaults
// and bounds applied.
func GetPaginationParams(c *gin.Context) (offset, limit int) {
	offset = 0
	limit = DefaultLimit

	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return offset, limit
}

// NewPaginationInfo builds the pagination section of a list response
func NewPaginationInfo(offset, limit, count int) *dto.PaginationInfo {
	return &dto.PaginationInfo{
		Offset: offset,
		Limit:  limit,
		Count:  count,
	}
}
