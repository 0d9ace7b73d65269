// Package respond holds the response helpers shared by the resource handlers.
package respond

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/apperr"
)

// Error writes the {"error": "..."} envelope with the status of err's kind
// and records err on the gin context for the access log.
func Error(c *gin.Context, err error) {
	ae := apperr.From(err)
	_ = c.Error(err)
	c.JSON(ae.Kind.Status(), gin.H{"error": ae.Message})
}

// ID parses a positive integer path parameter.
func ID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
