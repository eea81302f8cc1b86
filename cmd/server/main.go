// Package main is the entry point for the Social Media Content Analyzer API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/config"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/handlers"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/pipeline"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/router"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/services/ai"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/services/analyzer"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/services/ocr"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Social Media Content Analyzer API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, gin_mode=%s, max_upload=%dMB", cfg.Port, cfg.GinMode, cfg.MaxUploadMB)
	log.Printf("🔧 tesseract path: %s", cfg.TesseractPath)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Create Services
	store, err := pipeline.NewScratchStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("❌ Failed to prepare upload directory: %v", err)
	}

	ocrEngine := ocr.NewEngine(
		cfg.TesseractPath,
		cfg.TesseractLangs,
		time.Duration(cfg.OCRTimeoutSeconds)*time.Second,
		cfg.OCRConfidenceThreshold,
	)
	if err := ocrEngine.Available(context.Background()); err != nil {
		log.Printf("⚠️  OCR engine not available (image uploads will fail): %v", err)
	} else {
		log.Println("✅ OCR engine ready")
	}

	enricher := ai.New(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.AITimeoutSeconds)*time.Second,
		cfg.AIMaxConcurrent,
	)
	if enricher.IsConfigured() {
		log.Printf("✅ AI suggestions enabled (model: %s)", cfg.GeminiModel)
	} else {
		log.Println("⚠️  AI suggestions disabled (set GEMINI_API_KEY to enable); rule-based suggestions only")
	}

	// Step 3: Assemble the Pipeline
	p := pipeline.New(store, ocrEngine, enricher, analyzer.DefaultRuleConfig())

	// Step 4: Setup HTTP Router
	h := handlers.NewHandler(p, store, ocrEngine, enricher, cfg.MaxUploadBytes())
	r := router.Setup(h, cfg.RateLimitPerHour, cfg.AllowedOrigins)

	// Step 5: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second, // OCR + AI enrichment can take a while
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 6: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
