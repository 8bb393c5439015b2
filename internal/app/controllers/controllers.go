// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deren/greenhub/internal/pkg/flash"
)

// render writes a page payload as JSON, attaching any pending notice from the
// previous redirect.
func render(c *gin.Context, data gin.H) {
	if n := flash.Take(c); n != nil {
		data["notice"] = n
	}
	c.JSON(http.StatusOK, data)
}

// parseID reads a positive int64 path parameter. A malformed id behaves like
// a missing record.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}
