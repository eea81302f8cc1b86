package pipeline

import (
	"errors"
	"testing"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		filename string
		want     models.SourceFormat
		wantErr  bool
	}{
		{"pdf mime", "application/pdf", "doc.pdf", models.FormatPDF, false},
		{"pdf mime with params", "application/pdf; charset=binary", "doc.pdf", models.FormatPDF, false},
		{"jpeg mime", "image/jpeg", "photo.jpg", models.FormatImage, false},
		{"jpg mime variant", "image/jpg", "photo.jpg", models.FormatImage, false},
		{"png mime", "image/png", "shot.png", models.FormatImage, false},
		{"uppercase mime", "IMAGE/PNG", "shot.png", models.FormatImage, false},

		// Browsers sometimes send no useful content type; fall back to
		// the filename extension.
		{"empty mime pdf extension", "", "report.pdf", models.FormatPDF, false},
		{"octet-stream png extension", "application/octet-stream", "scan.PNG", models.FormatImage, false},
		{"octet-stream jpeg extension", "application/octet-stream", "scan.jpeg", models.FormatImage, false},

		{"docx rejected", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "notes.docx", "", true},
		{"docx extension rejected", "", "notes.docx", "", true},
		{"text rejected", "text/plain", "notes.txt", "", true},
		{"no mime no extension", "", "README", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.mimeType, tt.filename)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("DetectFormat(%q, %q) error = %v, want ErrUnsupportedFormat", tt.mimeType, tt.filename, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat(%q, %q) error = %v", tt.mimeType, tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q, %q) = %q, want %q", tt.mimeType, tt.filename, got, tt.want)
			}
		})
	}
}
