// File: quickfix/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoint handlers and route settings.
type HandlerBundle struct {
	// Trigger endpoints
	PaymentCreatedHandler gin.HandlerFunc
	TriggerToken          string
	MaxRequestsPerMin     int

	// Operational endpoints
	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}
