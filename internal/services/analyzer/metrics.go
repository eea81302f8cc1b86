// Package analyzer computes readability and engagement heuristics over
// extracted text: basic metrics, social-media elements, readability
// indices, per-platform fit, and a rule-based suggestion list.
//
// Everything in this package is a pure function of its inputs — no I/O,
// no package-level mutable state — so each request's analysis is fully
// independent.
package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
)

var sentenceSplitRegex = regexp.MustCompile(`[.!?]+`)

// ComputeMetrics calculates basic text metrics.
// Empty text yields all-zero metrics, not an error.
func ComputeMetrics(text string) models.AnalysisMetrics {
	words := strings.Fields(text)
	sentences := splitSentences(text)

	m := models.AnalysisMetrics{
		CharacterCount:         len(text),
		CharacterCountNoSpaces: len(strings.ReplaceAll(text, " ", "")),
		WordCount:              len(words),
		SentenceCount:          len(sentences),
	}

	if len(sentences) > 0 {
		m.AvgWordsPerSentence = round2(float64(len(words)) / float64(len(sentences)))
	}
	if len(words) > 0 {
		m.AvgCharsPerWord = round2(float64(m.CharacterCountNoSpaces) / float64(len(words)))
	}

	return m
}

// splitSentences splits text on sentence-terminal punctuation and drops
// empty segments. Non-empty text always yields at least one sentence —
// a line without terminal punctuation is itself a sentence.
func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceSplitRegex.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}
	return sentences
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// round1 rounds to one decimal place.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
