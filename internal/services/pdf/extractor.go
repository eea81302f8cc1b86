// Package pdf provides PDF text extraction.
//
// We use the ledongthuc/pdf library for text extraction.
// It's a pure Go implementation — no CGO or external dependencies required.
// This makes deployment simpler (just a single binary).
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Result holds the output from a PDF text extraction.
type Result struct {
	Text      string   // Extracted text, pages joined by newline in document order
	PageCount int      // Number of pages in the document
	Warnings  []string // Per-page extraction problems (image-only pages etc.)
}

// Extract reads a PDF from the given byte slice and extracts all text content.
//
// Go Pattern: We accept a []byte instead of a filename because the data
// comes from an HTTP upload (in memory), not a file on disk. The pdf
// library needs random access, so we wrap the slice in a bytes.Reader.
//
// A page that fails text extraction is skipped with a warning rather than
// failing the whole document — image-only pages are common and the
// remaining pages are still useful. Whole-document failures (corrupt
// header, encrypted stream) return an error.
func Extract(data []byte) (result *Result, err error) {
	// The pdf library panics on some malformed inputs instead of
	// returning an error; convert those into a normal error.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := pdfReader.NumPage()
	if pageCount == 0 {
		return nil, fmt.Errorf("PDF contains no pages")
	}

	var pages []string
	var warnings []string
	for i := 1; i <= pageCount; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			warnings = append(warnings, fmt.Sprintf("page %d has no content", i))
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Don't fail the document — some pages are images only
			warnings = append(warnings, fmt.Sprintf("page %d text extraction failed", i))
			continue
		}

		pages = append(pages, strings.TrimSpace(text))
	}

	return &Result{
		Text:      strings.TrimSpace(strings.Join(pages, "\n")),
		PageCount: pageCount,
		Warnings:  warnings,
	}, nil
}

// Validate checks if the data looks like a valid PDF by checking the magic bytes.
func Validate(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
