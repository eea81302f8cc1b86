package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
)

// DetectFormat classifies an upload as PDF or image from its declared
// media type, falling back to the file extension when the browser sent
// a generic type (drag-and-drop uploads often arrive as
// application/octet-stream). Pure — no side effects.
//
// Accepted types: application/pdf, image/jpeg, image/png (jpg ≡ jpeg).
// Anything else is ErrUnsupportedFormat.
func DetectFormat(mimeType, filename string) (models.SourceFormat, error) {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	// Strip parameters like "; charset=binary"
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	switch mt {
	case "application/pdf":
		return models.FormatPDF, nil
	case "image/jpeg", "image/jpg", "image/png":
		return models.FormatImage, nil
	case "", "application/octet-stream":
		return detectByExtension(filename)
	}

	return "", fmt.Errorf("%w: %q (allowed: pdf, jpeg, png)", ErrUnsupportedFormat, mimeType)
}

// detectByExtension is the fallback when no usable media type was declared.
func detectByExtension(filename string) (models.SourceFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return models.FormatPDF, nil
	case ".jpg", ".jpeg", ".png":
		return models.FormatImage, nil
	}
	return "", fmt.Errorf("%w: %q (allowed: pdf, jpeg, png)", ErrUnsupportedFormat, filename)
}
