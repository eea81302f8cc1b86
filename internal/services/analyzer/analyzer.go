package analyzer

import (
	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
)

// Analyze runs every heuristic section over the text and assembles the
// result. The sections are independent pure functions, evaluated left
// to right: metrics, social elements, readability, platform fit,
// suggestions. None of them can fail — insufficient text degrades to
// zero values rather than errors, because a partial analysis is more
// useful than none.
//
// AI enrichment is NOT done here; the caller attaches it afterwards so
// this function stays pure and fast.
func Analyze(text string, cfg RuleConfig) models.AnalysisResult {
	metrics := ComputeMetrics(text)
	social := AnalyzeSocialElements(text)
	readability := AnalyzeReadability(text)
	platforms := AnalyzePlatforms(text, DefaultPlatforms())
	suggestions := GenerateSuggestions(metrics, social, readability, platforms, cfg)

	return models.AnalysisResult{
		Metrics:          metrics,
		SocialAnalysis:   social,
		Readability:      readability,
		PlatformAnalysis: platforms,
		Suggestions:      suggestions,
	}
}
