package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const Greeting = "Welcome to Color Picker API"

// RegisterWelcome serves the plain-text greeting at the root path.
func RegisterWelcome(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Greeting)
	})
}
