package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
)

// Platform holds the posting constraints for one social platform.
type Platform struct {
	MaxChars        int
	OptimalHashtags int
}

// DefaultPlatforms returns the platform constraint table.
// Go Pattern: Returning a fresh map per call keeps the table effectively
// immutable — callers can't corrupt a shared copy.
func DefaultPlatforms() map[string]Platform {
	return map[string]Platform{
		"twitter":   {MaxChars: 280, OptimalHashtags: 2},
		"instagram": {MaxChars: 2200, OptimalHashtags: 5},
		"facebook":  {MaxChars: 63206, OptimalHashtags: 3},
		"linkedin":  {MaxChars: 3000, OptimalHashtags: 3},
	}
}

// AnalyzePlatforms compares text length against each platform's
// character limit and emits a verdict per platform.
func AnalyzePlatforms(text string, platforms map[string]Platform) map[string]models.PlatformVerdict {
	charCount := len(text)
	verdicts := make(map[string]models.PlatformVerdict, len(platforms))

	for name, p := range platforms {
		percentage := float64(charCount) / float64(p.MaxChars) * 100
		verdicts[name] = models.PlatformVerdict{
			Suitable:       charCount <= p.MaxChars,
			CharUsage:      fmt.Sprintf("%d/%d", charCount, p.MaxChars),
			CharPercentage: round1(math.Min(100, percentage)),
			Recommendation: platformRecommendation(name, charCount, p),
		}
	}

	return verdicts
}

// platformRecommendation builds the per-platform recommendation string.
func platformRecommendation(name string, charCount int, p Platform) string {
	title := capitalize(name)
	if charCount > p.MaxChars {
		excess := charCount - p.MaxChars
		return fmt.Sprintf("Shorten by %d characters for %s", excess, title)
	}
	if charCount <= p.MaxChars/2 {
		return fmt.Sprintf("Perfect for %s - good length", title)
	}
	return fmt.Sprintf("Suitable for %s", title)
}

// UnsuitablePlatforms returns the names of platforms the text is too
// long for, sorted for stable output.
func UnsuitablePlatforms(verdicts map[string]models.PlatformVerdict) []string {
	var names []string
	for name, v := range verdicts {
		if !v.Suitable {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// capitalize upper-cases the first letter of an ASCII name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
