// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible defaults.
// We use a struct to hold configuration and a Load function to read values
// from the environment — explicit, no framework magic.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// Gemini AI settings (engagement suggestions)
	GeminiAPIKey string
	GeminiModel  string

	// OCR settings
	TesseractPath          string // Path to the tesseract binary
	TesseractLangs         string // e.g. "eng" or "eng+deu"
	OCRTimeoutSeconds      int    // Hard timeout for one OCR run
	OCRConfidenceThreshold float64 // Below this, results carry a low-confidence warning

	// AI enrichment settings
	AITimeoutSeconds int // Timeout for one Gemini call
	AIMaxConcurrent  int // Concurrency cap against the Gemini API

	// Upload settings
	UploadDir   string // Scratch directory for uploaded files
	MaxUploadMB int    // Max upload size in megabytes

	// Rate limiting
	RateLimitPerHour int // Requests per hour per client IP

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
//
// Go Pattern: Functions that can fail return (value, error). The caller
// MUST handle the error — this is Go's alternative to exceptions.
func Load() (*Config, error) {
	cfg := &Config{
		// Server defaults
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		// Gemini AI — optional; suggestions degrade to rule-based only
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		// OCR — try common tesseract locations
		TesseractPath:          getEnv("TESSERACT_PATH", findTesseract()),
		TesseractLangs:         getEnv("TESSERACT_LANGS", "eng"),
		OCRTimeoutSeconds:      getEnvInt("OCR_TIMEOUT_SECONDS", 30),
		OCRConfidenceThreshold: getEnvFloat("OCR_CONFIDENCE_THRESHOLD", 50),

		// AI enrichment
		AITimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 30),
		AIMaxConcurrent:  getEnvInt("AI_MAX_CONCURRENT", 4),

		// Uploads
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 16),

		// Rate limiting
		RateLimitPerHour: getEnvInt("RATE_LIMIT_PER_HOUR", 100),

		// CORS — in production, set this to your frontend URL
		AllowedOrigins: []string{
			getEnv("CORS_ORIGIN", "http://localhost:5173"), // Vite dev server default
		},
	}

	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}

	if cfg.OCRConfidenceThreshold < 0 || cfg.OCRConfidenceThreshold > 100 {
		return nil, fmt.Errorf("OCR_CONFIDENCE_THRESHOLD must be in [0,100], got %v", cfg.OCRConfidenceThreshold)
	}

	// Security: wildcard CORS is fine for local dev but not in release mode.
	if cfg.GinMode == "release" {
		for _, origin := range cfg.AllowedOrigins {
			if origin == "*" {
				return nil, fmt.Errorf("CORS_ORIGIN must not be '*' in production; set your frontend URL")
			}
		}
	}

	return cfg, nil
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// getEnv reads an environment variable with a fallback default.
// Go Pattern: Small helper functions are idiomatic. Go favors simple,
// composable functions over complex frameworks.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}

// getEnvFloat reads a float environment variable with a fallback.
func getEnvFloat(key string, fallback float64) float64 {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fallback
	}
	return val
}

// findTesseract checks common locations for the tesseract binary.
func findTesseract() string {
	paths := []string{
		"/usr/bin/tesseract",
		"/usr/local/bin/tesseract",
		"/opt/homebrew/bin/tesseract",
		"/home/linuxbrew/.linuxbrew/bin/tesseract",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	// Fall back to PATH lookup at exec time
	return "tesseract"
}
