// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/handlers"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
func Setup(h *handlers.Handler, rateLimitPerHour int, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(allowedOrigins))

	rateLimiter := middleware.NewRateLimiter(rateLimitPerHour)

	// --- Public routes ---
	r.GET("/", h.Index)
	r.GET("/api/health", h.HealthCheck)

	// --- Analysis routes (rate limited — OCR and the AI call are the
	// expensive stages) ---
	limited := r.Group("/api")
	limited.Use(rateLimiter.RateLimit())
	{
		limited.POST("/upload", h.UploadFile)
		limited.POST("/analyze", h.AnalyzeText)
	}

	return r
}
