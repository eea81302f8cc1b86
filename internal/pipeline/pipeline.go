// Package pipeline sequences the document-analysis flow: format
// detection → extraction → heuristic analysis → AI enrichment →
// response assembly. One Process call per upload, fully synchronous;
// nothing is shared between requests.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/services/analyzer"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/services/ocr"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/services/pdf"
)

// minReadableChars is the short-text gate for PDF extractions: a "text"
// PDF yielding less than this is almost always a scanned document, and
// telling the user so beats analyzing ten characters.
const minReadableChars = 10

// OCRExtractor extracts text from image bytes.
// Go Pattern: Define interfaces where they're USED, not where they're
// implemented — the ocr.Engine satisfies this implicitly, and tests can
// substitute a stub.
type OCRExtractor interface {
	Extract(ctx context.Context, data []byte) (*ocr.Result, error)
}

// Enricher produces free-text AI suggestions. Best-effort: any error is
// swallowed by the pipeline and the analysis ships without enrichment.
type Enricher interface {
	Suggest(ctx context.Context, text string) (string, error)
}

// Upload is one uploaded document as received from the HTTP layer.
type Upload struct {
	Filename string
	MimeType string
	Data     []byte
}

// Pipeline wires the extraction and analysis stages together.
type Pipeline struct {
	store    *ScratchStore
	ocr      OCRExtractor
	enricher Enricher
	rules    analyzer.RuleConfig

	// pdfExtract is swappable for tests; defaults to pdf.Extract.
	pdfExtract func(data []byte) (*pdf.Result, error)
}

// New creates a pipeline. enricher may be nil when AI enrichment is
// disabled entirely.
func New(store *ScratchStore, ocrExtractor OCRExtractor, enricher Enricher, rules analyzer.RuleConfig) *Pipeline {
	return &Pipeline{
		store:      store,
		ocr:        ocrExtractor,
		enricher:   enricher,
		rules:      rules,
		pdfExtract: pdf.Extract,
	}
}

// Process runs the full pipeline over one upload.
//
// The scratch copy is written only after the format check passes and is
// deleted on every exit path. Extraction failures abort immediately;
// analysis never fails (zero-value fallbacks); AI enrichment failures
// degrade to rule-based suggestions.
func (p *Pipeline) Process(ctx context.Context, upload Upload) (*models.UploadResponse, error) {
	format, err := DetectFormat(upload.MimeType, upload.Filename)
	if err != nil {
		return nil, err
	}

	// Write-then-delete scratch semantics: the upload hits disk only
	// for the duration of this request.
	path, cleanup, err := p.store.Save(upload.Filename, upload.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	defer cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored upload: %w", err)
	}

	log.Printf("📄 Processing %s (%d bytes, format: %s)", upload.Filename, len(data), format)

	extraction, method, err := p.extract(ctx, format, data)
	if err != nil {
		return nil, err
	}

	analysis := p.Analyze(ctx, extraction.Text)

	pages := 1
	if extraction.PageCount > 0 {
		pages = extraction.PageCount
	}

	return &models.UploadResponse{
		Success:       true,
		ExtractedText: extraction.Text,
		FileInfo: models.FileInfo{
			Filename: upload.Filename,
			Size:     len(data),
			Type:     string(format),
			Pages:    pages,
		},
		Analysis: analysis,
		ProcessingInfo: models.ProcessingInfo{
			Timestamp:     time.Now().UTC(),
			Method:        method,
			TextLength:    len(extraction.Text),
			WordCount:     len(strings.Fields(extraction.Text)),
			OCRConfidence: extraction.Confidence,
			Warnings:      extraction.Warnings,
		},
	}, nil
}

// extract dispatches to the format-specific extractor and normalizes
// the result. The returned method string is "PDF" or "OCR".
func (p *Pipeline) extract(ctx context.Context, format models.SourceFormat, data []byte) (*models.ExtractionResult, string, error) {
	switch format {
	case models.FormatPDF:
		if !pdf.Validate(data) {
			return nil, "PDF", fmt.Errorf("%w: file does not look like a valid PDF", ErrExtractionFailure)
		}

		result, err := p.pdfExtract(data)
		if err != nil {
			return nil, "PDF", fmt.Errorf("%w: %v", ErrExtractionFailure, err)
		}

		// Scanned PDFs extract fine but carry no text layer; surface
		// that instead of analyzing an empty string.
		if len(strings.TrimSpace(result.Text)) < minReadableChars {
			return nil, "PDF", ErrNoReadableText
		}

		return &models.ExtractionResult{
			Text:      result.Text,
			Format:    models.FormatPDF,
			PageCount: result.PageCount,
			Warnings:  result.Warnings,
		}, "PDF", nil

	case models.FormatImage:
		result, err := p.ocr.Extract(ctx, data)
		if err != nil {
			return nil, "OCR", fmt.Errorf("%w: %v", ErrExtractionFailure, err)
		}

		// Low-confidence or even empty OCR output is NOT a failure —
		// the result carries a warning and the analysis runs on what
		// we got. Partial noisy text still beats an error page.
		conf := result.Confidence
		return &models.ExtractionResult{
			Text:       result.Text,
			Format:     models.FormatImage,
			Confidence: &conf,
			Warnings:   result.Warnings,
		}, "OCR", nil
	}

	return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Analyze runs the heuristic analysis and attaches best-effort AI
// suggestions. Never fails: empty text yields zeroed sections, and any
// enrichment error is logged and dropped.
func (p *Pipeline) Analyze(ctx context.Context, text string) models.AnalysisResult {
	analysis := analyzer.Analyze(text, p.rules)

	if p.enricher != nil && strings.TrimSpace(text) != "" {
		suggestions, err := p.enricher.Suggest(ctx, text)
		if err != nil {
			log.Printf("⚠️  AI enrichment unavailable, using rule-based suggestions only: %v", err)
		} else {
			analysis.AISuggestions = suggestions
		}
	}

	return analysis
}
