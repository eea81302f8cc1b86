// analyze.go handles the document upload and text analysis endpoints.
//
// POST /api/upload  — Upload a PDF or image for extraction + analysis
// POST /api/analyze — Analyze provided text directly
package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/pipeline"
)

// minAnalyzeChars is the minimum input length for the direct text
// endpoint; anything shorter has nothing worth analyzing.
const minAnalyzeChars = 10

// UploadFile handles file upload and processing.
// POST /api/upload
//
// Accepts a multipart upload with field name "file" (PDF, JPEG or PNG)
// and runs the full extraction + analysis pipeline synchronously.
func (h *Handler) UploadFile(c *gin.Context) {
	// Limit request body size
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUpload)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "file_too_large",
				Message: "Uploaded file exceeds the maximum allowed size.",
				Code:    http.StatusRequestEntityTooLarge,
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No file provided. Upload a file with the field name 'file'.",
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No file selected.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "read_error",
			Message: "Failed to read uploaded file.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	result, err := h.Pipeline.Process(c.Request.Context(), pipeline.Upload{
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		h.respondPipelineError(c, header.Filename, err)
		return
	}

	log.Printf("✅ Successfully processed %s", header.Filename)
	c.JSON(http.StatusOK, result)
}

// AnalyzeText analyzes provided text for social media optimization.
// POST /api/analyze
func (h *Handler) AnalyzeText(c *gin.Context) {
	var req models.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No text provided.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	text := strings.TrimSpace(req.Text)
	if len(text) < minAnalyzeChars {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "text_too_short",
			Message: "Text too short for meaningful analysis.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	analysis := h.Pipeline.Analyze(c.Request.Context(), text)

	c.JSON(http.StatusOK, models.AnalyzeTextResponse{
		Success:  true,
		Analysis: analysis,
		TextInfo: models.TextInfo{
			Length:         len(text),
			WordCount:      len(strings.Fields(text)),
			CharacterCount: len(text),
		},
		Timestamp: time.Now().UTC(),
	})
}

// respondPipelineError maps the pipeline error taxonomy onto HTTP
// statuses. Extraction-class errors are the user's problem (4xx);
// anything unexpected is logged and answered with a generic 500.
func (h *Handler) respondPipelineError(c *gin.Context, filename string, err error) {
	switch {
	case errors.Is(err, pipeline.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unsupported_format",
			Message: "File type not supported. Allowed types: pdf, jpeg, png.",
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, pipeline.ErrNoReadableText):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no_readable_text",
			Message: "No readable text found in the document.",
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, pipeline.ErrExtractionFailure):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "extraction_failed",
			Message: "Text extraction failed: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	default:
		log.Printf("❌ Unexpected error processing %s: %v", filename, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: "Internal server error occurred during file processing.",
			Code:    http.StatusInternalServerError,
		})
	}
}
