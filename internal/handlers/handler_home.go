package handlers

import "github.com/gin-gonic/gin"

// registerHomeRoutes registers the unauthenticated service routes.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
}
