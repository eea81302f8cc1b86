package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/pipeline"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/services/analyzer"
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/services/ocr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubOCR struct {
	result *ocr.Result
	err    error
}

func (s *stubOCR) Extract(ctx context.Context, data []byte) (*ocr.Result, error) {
	return s.result, s.err
}

func (s *stubOCR) Available(ctx context.Context) error {
	return s.err
}

type stubAI struct{ configured bool }

func (s *stubAI) IsConfigured() bool { return s.configured }

func newTestHandler(t *testing.T, ocrStub *stubOCR) *Handler {
	t.Helper()
	store, err := pipeline.NewScratchStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewScratchStore() error = %v", err)
	}
	p := pipeline.New(store, ocrStub, nil, analyzer.DefaultRuleConfig())
	return NewHandler(p, store, ocrStub, &stubAI{}, 16<<20)
}

func newTestRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/", h.Index)
	r.GET("/api/health", h.HealthCheck)
	r.POST("/api/upload", h.UploadFile)
	r.POST("/api/analyze", h.AnalyzeText)
	return r
}

// multipartBody builds a multipart form with one "file" part carrying
// an explicit content type.
func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("CreatePart() error = %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("part.Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("writer.Close() error = %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestAnalyzeText(t *testing.T) {
	h := newTestHandler(t, &stubOCR{})
	r := newTestRouter(h)

	t.Run("valid text", func(t *testing.T) {
		body := `{"text":"Buy now! Visit https://x.co #sale and share with your friends today"}`
		req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}

		var resp models.AnalyzeTextResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response JSON: %v", err)
		}
		if !resp.Success {
			t.Error("Success = false")
		}
		if resp.Analysis.SocialAnalysis.Hashtags.Count != 1 {
			t.Errorf("hashtag count = %d, want 1", resp.Analysis.SocialAnalysis.Hashtags.Count)
		}
		if resp.TextInfo.WordCount == 0 {
			t.Error("TextInfo.WordCount = 0")
		}
	})

	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"missing body", ``, "invalid_request"},
		{"missing text field", `{}`, "invalid_request"},
		{"text too short", `{"text":"hi"}`, "text_too_short"},
		{"whitespace only", `{"text":"            "}`, "text_too_short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad error JSON: %v", err)
			}
			if resp.Error != tt.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}

func TestUploadFile(t *testing.T) {
	t.Run("image upload succeeds via OCR", func(t *testing.T) {
		h := newTestHandler(t, &stubOCR{result: &ocr.Result{
			Text:       "Recognized words from the scanned image #demo",
			Confidence: 91.5,
		}})
		r := newTestRouter(h)

		body, contentType := multipartBody(t, "scan.png", "image/png", []byte("fake image bytes"))
		req := httptest.NewRequest("POST", "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
		}
		var resp models.UploadResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response JSON: %v", err)
		}
		if resp.ProcessingInfo.Method != "OCR" {
			t.Errorf("Method = %q, want OCR", resp.ProcessingInfo.Method)
		}
		if resp.ProcessingInfo.OCRConfidence == nil || *resp.ProcessingInfo.OCRConfidence != 91.5 {
			t.Errorf("OCRConfidence = %v, want 91.5", resp.ProcessingInfo.OCRConfidence)
		}
		if resp.FileInfo.Filename != "scan.png" {
			t.Errorf("Filename = %q", resp.FileInfo.Filename)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		h := newTestHandler(t, &stubOCR{})
		r := newTestRouter(h)

		body, contentType := multipartBody(t, "notes.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("doc"))
		req := httptest.NewRequest("POST", "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp models.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad error JSON: %v", err)
		}
		if resp.Error != "unsupported_format" {
			t.Errorf("error = %q, want unsupported_format", resp.Error)
		}
	})

	t.Run("extraction failure", func(t *testing.T) {
		h := newTestHandler(t, &stubOCR{err: errors.New("unable to decode image")})
		r := newTestRouter(h)

		body, contentType := multipartBody(t, "bad.png", "image/png", []byte("not an image"))
		req := httptest.NewRequest("POST", "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp models.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != "extraction_failed" {
			t.Errorf("error = %q, want extraction_failed", resp.Error)
		}
	})

	t.Run("pdf without text layer", func(t *testing.T) {
		// A valid-looking PDF header with nothing extractable behind it
		// parses as corrupt, which still maps to a 400.
		h := newTestHandler(t, &stubOCR{})
		r := newTestRouter(h)

		body, contentType := multipartBody(t, "scanned.pdf", "application/pdf", []byte("%PDF-1.4 but empty"))
		req := httptest.NewRequest("POST", "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing file field", func(t *testing.T) {
		h := newTestHandler(t, &stubOCR{})
		r := newTestRouter(h)

		req := httptest.NewRequest("POST", "/api/upload", strings.NewReader("no multipart here"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp models.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != "invalid_request" {
			t.Errorf("error = %q, want invalid_request", resp.Error)
		}
	})

	t.Run("file too large", func(t *testing.T) {
		h := newTestHandler(t, &stubOCR{})
		h.MaxUpload = 64 // force the limit low
		r := newTestRouter(h)

		body, contentType := multipartBody(t, "big.png", "image/png", bytes.Repeat([]byte("x"), 1024))
		req := httptest.NewRequest("POST", "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("status = %d, want 413; body: %s", w.Code, w.Body.String())
		}
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("ocr available", func(t *testing.T) {
		h := newTestHandler(t, &stubOCR{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/health", nil)
		newTestRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var resp models.HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad health JSON: %v", err)
		}
		if resp.Status != "ok" {
			t.Errorf("Status = %q, want ok", resp.Status)
		}
		if resp.OCREngine != "available" {
			t.Errorf("OCREngine = %q, want available", resp.OCREngine)
		}
		if !resp.UploadDirWritable {
			t.Error("UploadDirWritable = false for a temp dir")
		}
		if resp.GeminiConfigured {
			t.Error("GeminiConfigured = true with no key set")
		}
	})

	t.Run("ocr missing", func(t *testing.T) {
		h := newTestHandler(t, &stubOCR{err: errors.New("tesseract not found")})
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/health", nil)
		newTestRouter(h).ServeHTTP(w, req)

		var resp models.HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad health JSON: %v", err)
		}
		if !strings.HasPrefix(resp.OCREngine, "unavailable") {
			t.Errorf("OCREngine = %q, want an unavailable message", resp.OCREngine)
		}
	})
}

func TestIndex(t *testing.T) {
	h := newTestHandler(t, &stubOCR{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	newTestRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/api/upload") {
		t.Error("index payload missing endpoint listing")
	}
}
