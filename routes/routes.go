package routes

import (
	"quickfix/handlers"
	"quickfix/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes registers the push endpoints of the event-delivery layer.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	events := r.Group("/events")
	{
		events.Use(middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))
		events.Use(middleware.TriggerAuthMiddleware(hb.TriggerToken))
		events.POST("/payment-created", hb.PaymentCreatedHandler)
	}
}

// RegisterOpsRoutes registers health and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", hb.MetricsHandler)
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterOpsRoutes(r, hb)
	if hb.PaymentCreatedHandler != nil {
		RegisterEventRoutes(r, hb)
	}
}
