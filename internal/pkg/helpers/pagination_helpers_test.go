package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestPaginationDefaults(t *testing.T) {
	offset, limit := GetPaginationParams(testContext(t, ""))
	assert.Equal(t, 0, offset)
	assert.Equal(t, DefaultLimit, limit)
}

func TestPaginationExplicitValues(t *testing.T) {
	offset, limit := GetPaginationParams(testContext(t, "offset=40&limit=20"))
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)
}

func TestPaginationCapsLimit(t *testing.T) {
	_, limit := GetPaginationParams(testContext(t, "limit=9999"))
	assert.Equal(t, MaxLimit, limit)
}

func TestPaginationIgnoresMalformedValues(t *testing.T) {
	offset, limit := GetPaginationParams(testContext(t, "offset=abc&limit=-5"))
	assert.Equal(t, 0, offset)
	assert.Equal(t, DefaultLimit, limit)
}
