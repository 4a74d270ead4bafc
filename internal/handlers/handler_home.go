package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes sets up the root route.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
}

// home godoc
// @Summary Service banner
// @Description Returns the service name, useful as a liveness probe.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "battery_shop_backend"})
}
