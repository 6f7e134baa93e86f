package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt64 parses an optional int64 query parameter, returning nil when
// the parameter is absent or malformed.
func QueryInt64(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// QueryInt parses an optional int query parameter, returning nil when the
// parameter is absent or malformed.
func QueryInt(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// QueryString returns an optional string query parameter, nil when absent
func QueryString(c *gin.Context, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryBool parses an optional boolean query parameter with a default
func QueryBool(c *gin.Context, name string, fallback bool) bool {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
