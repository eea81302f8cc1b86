package analyzer

import (
	"fmt"
	"strings"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
)

// RuleConfig holds the thresholds for the suggestion rule table.
// It is passed in explicitly rather than living as package state, so a
// caller can tune thresholds without affecting concurrent requests.
type RuleConfig struct {
	GradeThreshold float64 // Flesch-Kincaid grade above this → "simplify language"
	EaseThreshold  float64 // Flesch reading ease below this → complexity warning
	MinWords       int     // Posts shorter than this get a "too short" nudge
	MaxHashtags    int     // More than this looks spammy
	MaxEmojis      int     // More than this is distracting
}

// DefaultRuleConfig returns the standard thresholds.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		GradeThreshold: 8.0,
		EaseThreshold:  60.0,
		MinWords:       5,
		MaxHashtags:    10,
		MaxEmojis:      5,
	}
}

// GenerateSuggestions evaluates the rule table over the analysis
// sections and returns zero or more priority-tagged suggestions.
//
// The rules are independent and all applicable rules fire, with no
// short-circuiting. Evaluation order is fixed: readability, hashtags,
// length, call-to-action, engagement.
func GenerateSuggestions(
	metrics models.AnalysisMetrics,
	social models.SocialAnalysis,
	readability models.ReadabilityScores,
	platforms map[string]models.PlatformVerdict,
	cfg RuleConfig,
) []models.Suggestion {
	suggestions := []models.Suggestion{}

	// Readability rules only apply when there was enough text to score.
	if metrics.WordCount > 0 {
		if readability.FleschKincaidGrade > cfg.GradeThreshold {
			suggestions = append(suggestions, models.Suggestion{
				Type:       "Readability",
				Priority:   models.PriorityHigh,
				Suggestion: "Simplify your language. The content reads above the typical social media level.",
				Action:     fmt.Sprintf("Current grade level: %.1f. Use shorter words and sentences to bring it under %.0f.", readability.FleschKincaidGrade, cfg.GradeThreshold),
			})
		}
		if readability.FleschReadingEase > 0 && readability.FleschReadingEase < cfg.EaseThreshold {
			suggestions = append(suggestions, models.Suggestion{
				Type:       "Readability",
				Priority:   models.PriorityMedium,
				Suggestion: "Content may be too complex for social media.",
				Action:     "Use simpler words and shorter sentences for better engagement.",
			})
		}
	}

	// Hashtag strategy.
	switch {
	case social.Hashtags.Count == 0:
		suggestions = append(suggestions, models.Suggestion{
			Type:       "Hashtag Strategy",
			Priority:   models.PriorityHigh,
			Suggestion: "Add 3-5 relevant hashtags to increase discoverability.",
			Action:     "Research trending hashtags in your niche and add them strategically.",
		})
	case social.Hashtags.Count > cfg.MaxHashtags:
		suggestions = append(suggestions, models.Suggestion{
			Type:       "Hashtag Strategy",
			Priority:   models.PriorityMedium,
			Suggestion: "Too many hashtags can look spammy.",
			Action:     fmt.Sprintf("Current: %d hashtags. Reduce to 3-5 high-quality ones.", social.Hashtags.Count),
		})
	}

	// Length. Any platform the text is too long for fires one rule.
	if unsuitable := UnsuitablePlatforms(platforms); len(unsuitable) > 0 {
		suggestions = append(suggestions, models.Suggestion{
			Type:       "Length Optimization",
			Priority:   models.PriorityHigh,
			Suggestion: fmt.Sprintf("Content exceeds the character limit for: %s.", strings.Join(unsuitable, ", ")),
			Action:     fmt.Sprintf("Current: %d characters. Trim the text to fit your target platforms.", metrics.CharacterCount),
		})
	}
	if metrics.WordCount > 0 && metrics.WordCount < cfg.MinWords {
		suggestions = append(suggestions, models.Suggestion{
			Type:       "Length Optimization",
			Priority:   models.PriorityMedium,
			Suggestion: "Your post is very short. Add more context to engage your audience.",
			Action:     fmt.Sprintf("Current: %d words. Try adding 10-20 more words for better engagement.", metrics.WordCount),
		})
	}

	// Call to action.
	if social.CTAElements == 0 {
		suggestions = append(suggestions, models.Suggestion{
			Type:       "Call to Action",
			Priority:   models.PriorityMedium,
			Suggestion: "Include a clear call-to-action to guide your audience.",
			Action:     `Add phrases like "Share your thoughts", "Follow for more", or "Click the link".`,
		})
	}

	// Engagement and visual appeal tips.
	if social.Questions == 0 && social.Exclamations == 0 {
		suggestions = append(suggestions, models.Suggestion{
			Type:       "Engagement",
			Priority:   models.PriorityLow,
			Suggestion: "Add a question or exclamation to encourage interaction.",
			Action:     `End your post with "What do you think?" or add excitement with an exclamation mark.`,
		})
	}
	switch {
	case social.Emojis.Count == 0:
		suggestions = append(suggestions, models.Suggestion{
			Type:       "Visual Appeal",
			Priority:   models.PriorityLow,
			Suggestion: "Add 1-2 relevant emojis to make your post more visually appealing.",
			Action:     "Choose emojis that match your content tone and message.",
		})
	case social.Emojis.Count > cfg.MaxEmojis:
		suggestions = append(suggestions, models.Suggestion{
			Type:       "Visual Appeal",
			Priority:   models.PriorityLow,
			Suggestion: "Too many emojis can be distracting.",
			Action:     fmt.Sprintf("Current: %d emojis. Consider reducing to 2-3.", social.Emojis.Count),
		})
	}

	return suggestions
}
