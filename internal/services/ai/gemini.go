// Package ai generates engagement suggestions via Google's Gemini API.
//
// The request format follows the generateContent REST endpoint. We call
// it with plain net/http — no SDK needed for a single endpoint — and
// treat every failure as soft: the caller falls back to rule-based
// suggestions, so a Gemini outage never breaks an analysis.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// maxPromptChars caps how much text we send — very long documents get
// truncated to stay under token limits.
const maxPromptChars = 15000

// ErrNotConfigured is returned when no API key is set. Callers treat it
// the same as any other soft failure.
var ErrNotConfigured = errors.New("gemini API key not configured; set GEMINI_API_KEY")

// Service generates AI suggestions.
type Service struct {
	apiKey     string
	model      string
	httpClient *http.Client

	// Go Pattern: A buffered channel as a semaphore. Each call acquires
	// a slot before talking to the API, capping concurrent requests so
	// a traffic burst doesn't blow through the API's rate limits.
	slots chan struct{}
}

// New creates a new suggestion service.
func New(apiKey, model string, timeout time.Duration, maxConcurrent int) *Service {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Service{
		apiKey: apiKey,
		model:  model,
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever!
		httpClient: &http.Client{
			Timeout: timeout,
		},
		slots: make(chan struct{}, maxConcurrent),
	}
}

// IsConfigured returns true if the Gemini API key is set.
func (s *Service) IsConfigured() bool {
	return s.apiKey != ""
}

// --- Gemini API wire types ---

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Suggest asks Gemini for engagement suggestions on the given content.
//
// Best-effort by contract: every error path returns an error the caller
// is expected to swallow (logging it) — the analysis proceeds with
// rule-based suggestions only. There are no retries; a failed call is
// simply a missing enrichment.
func (s *Service) Suggest(ctx context.Context, text string) (string, error) {
	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}

	// Acquire a concurrency slot, or bail out if the request dies first.
	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	case <-ctx.Done():
		return "", fmt.Errorf("gemini call cancelled while waiting for a slot: %w", ctx.Err())
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: buildPrompt(text)}},
		}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf(geminiEndpoint, s.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	log.Printf("🤖 Requesting AI suggestions from %s", s.model)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close() // Go Pattern: ALWAYS close response bodies!

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("gemini error: %s", geminiResp.Error.Message)
	}

	suggestions := extractText(&geminiResp)
	if suggestions == "" {
		return "", fmt.Errorf("no response from model")
	}

	log.Printf("✅ AI suggestions received: %d characters", len(suggestions))
	return suggestions, nil
}

// buildPrompt constructs the suggestion prompt, truncating long content.
func buildPrompt(text string) string {
	truncated := text
	if len(text) > maxPromptChars {
		truncated = text[:maxPromptChars] + "\n\n[Content truncated due to length...]"
	}

	return fmt.Sprintf(`Analyze this social media content and give 3-5 specific suggestions to improve engagement:

Content: "%s"

Give suggestions in this format:
1. [Specific suggestion]
2. [Specific suggestion]
3. [Specific suggestion]

Focus on: hashtags, call-to-action, emotional appeal, formatting, and audience engagement.`, truncated)
}

// extractText joins the text parts of the first candidate.
func extractText(resp *geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var parts []string
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
