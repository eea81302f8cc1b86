// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// There is no database here — every struct below is created fresh per
// request and lives only as long as the HTTP response that carries it.
//
// JSON tags (e.g., `json:"word_count"`) control how struct fields are
// serialized. The field names match what the dashboard frontend expects.
package models

import "time"

// SourceFormat identifies how the text was extracted from an upload.
// Go Pattern: We use string constants instead of enums (Go doesn't have enums).
type SourceFormat string

const (
	FormatPDF   SourceFormat = "pdf"
	FormatImage SourceFormat = "image"
)

// Priority ranks a suggestion's importance.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ExtractionResult holds the text pulled out of an uploaded document.
//
// Invariant: Text may be an empty string but is never "missing".
// Confidence is a pointer because it only applies to OCR (image)
// extractions; for PDFs it stays nil and `omitempty` keeps it out of
// the JSON entirely.
type ExtractionResult struct {
	Text       string       `json:"text"`
	Format     SourceFormat `json:"format"`
	PageCount  int          `json:"page_count,omitempty"` // PDFs only
	Confidence *float64     `json:"confidence,omitempty"` // OCR only, 0-100
	Warnings   []string     `json:"warnings,omitempty"`
}

// AnalysisMetrics are basic counts derived solely from the extracted text.
// All values are non-negative; empty text yields the zero value.
type AnalysisMetrics struct {
	CharacterCount         int     `json:"character_count"`
	CharacterCountNoSpaces int     `json:"character_count_no_spaces"`
	WordCount              int     `json:"word_count"`
	SentenceCount          int     `json:"sentence_count"`
	AvgWordsPerSentence    float64 `json:"avg_words_per_sentence"`
	AvgCharsPerWord        float64 `json:"avg_chars_per_word"`
}

// ElementList pairs an occurrence count with the matched values.
// Count is the total number of occurrences in the text; List holds the
// unique values in first-seen order.
type ElementList struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

// SocialAnalysis captures social-media-specific elements found in the text.
type SocialAnalysis struct {
	Hashtags     ElementList `json:"hashtags"`
	Mentions     ElementList `json:"mentions"`
	URLs         ElementList `json:"urls"`
	Emojis       ElementList `json:"emojis"`
	Questions    int         `json:"questions"`
	Exclamations int         `json:"exclamations"`
	CTAElements  int         `json:"cta_elements"`
}

// ReadabilityScores holds standard readability indices.
// When the text has no words or sentences the scores are all zero,
// signalling "insufficient text for readability analysis".
type ReadabilityScores struct {
	FleschReadingEase         float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade        float64 `json:"flesch_kincaid_grade"`
	AutomatedReadabilityIndex float64 `json:"automated_readability_index"`
	ColemanLiauIndex          float64 `json:"coleman_liau_index"`
	ReadingTimeMinutes        float64 `json:"reading_time_minutes"`
}

// PlatformVerdict is the suitability verdict for one social platform.
type PlatformVerdict struct {
	Suitable       bool    `json:"suitable"`
	CharUsage      string  `json:"char_usage"`      // "used/limit"
	CharPercentage float64 `json:"char_percentage"` // 0-100, capped
	Recommendation string  `json:"recommendation"`
}

// Suggestion is one improvement suggestion produced by the rule table.
type Suggestion struct {
	Type       string   `json:"type"`
	Priority   Priority `json:"priority"`
	Suggestion string   `json:"suggestion"`
	Action     string   `json:"action,omitempty"`
}

// AnalysisResult aggregates every analysis section for one request.
// It is assembled once and never mutated afterwards; nothing here is
// shared across requests.
type AnalysisResult struct {
	Metrics          AnalysisMetrics            `json:"metrics"`
	SocialAnalysis   SocialAnalysis             `json:"social_analysis"`
	Readability      ReadabilityScores          `json:"readability"`
	PlatformAnalysis map[string]PlatformVerdict `json:"platform_analysis"`
	Suggestions      []Suggestion               `json:"suggestions"`
	AISuggestions    string                     `json:"ai_suggestions,omitempty"`
}

// FileInfo describes the uploaded file as received.
type FileInfo struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
	Type     string `json:"type"`
	Pages    int    `json:"pages"`
}

// ProcessingInfo describes how the upload was processed.
type ProcessingInfo struct {
	Timestamp     time.Time `json:"timestamp"`
	Method        string    `json:"method"` // "PDF" or "OCR"
	TextLength    int       `json:"text_length"`
	WordCount     int       `json:"word_count"`
	OCRConfidence *float64  `json:"ocr_confidence,omitempty"`
	Warnings      []string  `json:"warnings,omitempty"`
}

// UploadResponse is the full payload for POST /api/upload.
type UploadResponse struct {
	Success        bool           `json:"success"`
	ExtractedText  string         `json:"extracted_text"`
	FileInfo       FileInfo       `json:"file_info"`
	Analysis       AnalysisResult `json:"analysis"`
	ProcessingInfo ProcessingInfo `json:"processing_info"`
}

// --- Request/Response DTOs ---
// Go Pattern: Separate structs for API input/output vs internal types.
// This keeps the API contract explicit.

// AnalyzeTextRequest is the JSON body for POST /api/analyze.
// The `binding:"required"` tag makes Gin reject requests missing the field.
type AnalyzeTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// TextInfo summarizes the input of a direct text analysis.
type TextInfo struct {
	Length         int `json:"length"`
	WordCount      int `json:"word_count"`
	CharacterCount int `json:"character_count"`
}

// AnalyzeTextResponse is the payload for POST /api/analyze.
type AnalyzeTextResponse struct {
	Success   bool           `json:"success"`
	Analysis  AnalysisResult `json:"analysis"`
	TextInfo  TextInfo       `json:"text_info"`
	Timestamp time.Time      `json:"timestamp"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status            string    `json:"status"`
	Version           string    `json:"version"`
	OCREngine         string    `json:"ocr_engine"`
	GeminiConfigured  bool      `json:"gemini_configured"`
	UploadDirWritable bool      `json:"upload_dir_writable"`
	Timestamp         time.Time `json:"timestamp"`
}
