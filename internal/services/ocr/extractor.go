// Package ocr extracts text from images by driving the tesseract CLI.
//
// Go Pattern: Like yt-dlp or ffmpeg, tesseract is an external tool we
// shell out to with exec.CommandContext — the context cancels the
// process if the request times out, so no runaway OCR jobs pile up
// on the server.
//
// We request TSV output because it carries a per-word confidence column,
// which lets us compute the run's average confidence and flag
// low-confidence results instead of silently returning noise.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Result holds the output from one OCR run.
type Result struct {
	Text       string   // Recognized text; may be empty for blank images
	Confidence float64  // Average word confidence, 0-100
	Warnings   []string // Non-fatal problems (low confidence etc.)
}

// Engine runs OCR using a tesseract binary.
type Engine struct {
	binaryPath string
	langs      string
	timeout    time.Duration
	threshold  float64 // Confidence below this adds a warning
}

// NewEngine creates a tesseract-backed OCR engine.
// Go Pattern: Constructor functions are named New<Type> or New<Package>.
func NewEngine(binaryPath, langs string, timeout time.Duration, confidenceThreshold float64) *Engine {
	return &Engine{
		binaryPath: binaryPath,
		langs:      langs,
		timeout:    timeout,
		threshold:  confidenceThreshold,
	}
}

// Available checks whether the tesseract binary can be executed.
// Used by the health endpoint.
func (e *Engine) Available(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binaryPath, "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tesseract not available at %s: %w", e.binaryPath, err)
	}
	return nil
}

// Extract runs OCR over the given image bytes.
//
// Policy: a low-confidence result is still returned — with a warning —
// because partial or noisy text is more useful to the caller than
// nothing. Only an undecodable image or a failed tesseract run is a
// hard error.
func (e *Engine) Extract(ctx context.Context, data []byte) (*Result, error) {
	// Validate the image before shelling out — a zero-byte file or an
	// unsupported codec should fail fast with a clear message.
	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	} else {
		log.Printf("📸 Running OCR on %s image (%d bytes)", format, len(data))
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	// tesseract wants a file path; give it a scratch copy and clean up
	// on every exit path.
	tmp, err := os.CreateTemp("", "sca-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	tmp.Close()

	// --oem 3 --psm 6: default engine, "assume a uniform block of text".
	cmd := exec.CommandContext(ctx, e.binaryPath,
		tmp.Name(), "stdout",
		"--oem", "3",
		"--psm", "6",
		"-l", e.langs,
		"tsv",
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("OCR timed out after %s", e.timeout)
		}
		return nil, fmt.Errorf("tesseract failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}

	text, confidence := parseTSV(string(output))

	result := &Result{
		Text:       text,
		Confidence: confidence,
	}

	if confidence < e.threshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("low OCR confidence (%.1f%% < %.0f%%); extracted text may be inaccurate", confidence, e.threshold))
	}

	log.Printf("✅ OCR completed: %d characters, avg confidence %.1f%%", len(text), confidence)
	return result, nil
}

// parseTSV extracts recognized text and average confidence from
// tesseract's TSV output.
//
// TSV columns: level page block par line word left top width height conf text.
// Word rows have level 5 and a non-negative confidence (structural rows
// carry conf -1). Words on the same line are joined with spaces; a new
// line number starts a new output line.
func parseTSV(tsv string) (string, float64) {
	var lines []string
	var current []string
	lastLineKey := ""

	var confSum float64
	var confCount int

	for i, row := range strings.Split(tsv, "\n") {
		if i == 0 {
			continue // header row
		}
		cols := strings.Split(row, "\t")
		if len(cols) < 12 {
			continue
		}

		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue // structural row, not a word
		}

		word := strings.TrimSpace(cols[11])
		if word == "" {
			continue
		}

		// block/par/line numbers identify the visual line
		lineKey := cols[2] + "/" + cols[3] + "/" + cols[4]
		if lineKey != lastLineKey && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
		}
		lastLineKey = lineKey

		current = append(current, word)
		confSum += conf
		confCount++
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	confidence := 0.0
	if confCount > 0 {
		confidence = confSum / float64(confCount)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), confidence
}
