// Package controllers holds the gin HTTP handlers. Controllers bind and
// parse requests, delegate to services and translate errors centrally.
package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/middleware"
)

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}

func respondList(c *gin.Context, data interface{}, pagination *dto.PaginationInfo) {
	c.JSON(200, dto.APIResponse{
		Data:       data,
		Pagination: pagination,
		Timestamp:  time.Now(),
	})
}

// parseIDParam reads a numeric path parameter, aborting with a 400 on
// malformed input. The bool result reports whether the handler may continue.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		middleware.HandleBindingError(c, err)
		return 0, false
	}
	return id, true
}
