package handlers

import (
	"net/http"

	"quickfix/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency snapshot; 503 when any check failed.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": http.StatusText(code), "health": status})
}
