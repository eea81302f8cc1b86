// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides
// request data, response methods, and middleware data. We group related
// handlers into a struct (Handler) that holds shared dependencies —
// dependency injection via struct fields, no globals.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/pipeline"
)

// Version is reported by the health and index endpoints.
const Version = "1.0.0"

// OCRProber reports whether the OCR engine is reachable.
type OCRProber interface {
	Available(ctx context.Context) error
}

// AIStatus reports whether the AI enrichment service has credentials.
type AIStatus interface {
	IsConfigured() bool
}

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	Pipeline   *pipeline.Pipeline
	Store      *pipeline.ScratchStore
	OCR        OCRProber
	AI         AIStatus
	MaxUpload  int64 // bytes
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(p *pipeline.Pipeline, store *pipeline.ScratchStore, ocrProber OCRProber, aiStatus AIStatus, maxUploadBytes int64) *Handler {
	return &Handler{
		Pipeline:  p,
		Store:     store,
		OCR:       ocrProber,
		AI:        aiStatus,
		MaxUpload: maxUploadBytes,
	}
}

// Index returns the API status payload.
// GET /
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Social Media Content Analyzer API",
		"status":  "running",
		"version": Version,
		"endpoints": gin.H{
			"upload":  "/api/upload",
			"analyze": "/api/analyze",
			"health":  "/api/health",
		},
	})
}

// HealthCheck returns the API health status, including whether the OCR
// engine and the AI service are usable.
// GET /api/health
func (h *Handler) HealthCheck(c *gin.Context) {
	ocrStatus := "available"
	if err := h.OCR.Available(c.Request.Context()); err != nil {
		ocrStatus = "unavailable: " + err.Error()
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:            "ok",
		Version:           Version,
		OCREngine:         ocrStatus,
		GeminiConfigured:  h.AI.IsConfigured(),
		UploadDirWritable: h.Store.Writable(),
		Timestamp:         time.Now().UTC(),
	})
}
