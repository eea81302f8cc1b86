package analyzer

import (
	"fmt"
	"strings"
	"testing"
)

// TestAnalyzePlatforms verifies the per-platform verdicts.
func TestAnalyzePlatforms(t *testing.T) {
	platforms := DefaultPlatforms()

	t.Run("short text suits everything", func(t *testing.T) {
		verdicts := AnalyzePlatforms("short post", platforms)

		if len(verdicts) != len(platforms) {
			t.Fatalf("got %d verdicts, want %d", len(verdicts), len(platforms))
		}
		for name, v := range verdicts {
			if !v.Suitable {
				t.Errorf("%s: expected suitable for short text, got %+v", name, v)
			}
			if !strings.Contains(v.Recommendation, "good length") {
				t.Errorf("%s: recommendation = %q, want the good-length variant", name, v.Recommendation)
			}
		}
	})

	t.Run("text over the twitter limit", func(t *testing.T) {
		text := strings.Repeat("a", 300)
		verdicts := AnalyzePlatforms(text, platforms)

		tw := verdicts["twitter"]
		if tw.Suitable {
			t.Error("300 chars should not suit twitter (limit 280)")
		}
		if tw.CharUsage != "300/280" {
			t.Errorf("CharUsage = %q, want \"300/280\"", tw.CharUsage)
		}
		if tw.CharPercentage != 100 {
			t.Errorf("CharPercentage = %v, want capped at 100", tw.CharPercentage)
		}
		if tw.Recommendation != "Shorten by 20 characters for Twitter" {
			t.Errorf("Recommendation = %q", tw.Recommendation)
		}

		if ig := verdicts["instagram"]; !ig.Suitable {
			t.Error("300 chars should still suit instagram (limit 2200)")
		}
	})

	t.Run("exactly at the limit is suitable", func(t *testing.T) {
		text := strings.Repeat("a", 280)
		tw := AnalyzePlatforms(text, platforms)["twitter"]
		if !tw.Suitable {
			t.Error("280 chars should suit twitter exactly")
		}
		if tw.CharPercentage != 100 {
			t.Errorf("CharPercentage = %v, want 100", tw.CharPercentage)
		}
	})
}

// TestAnalyzePlatforms_Monotonic: char_percentage never decreases as
// text grows, for a fixed platform.
func TestAnalyzePlatforms_Monotonic(t *testing.T) {
	platforms := DefaultPlatforms()

	for name := range platforms {
		t.Run(name, func(t *testing.T) {
			prev := -1.0
			for _, n := range []int{0, 1, 10, 100, 280, 281, 1000, 5000, 70000} {
				text := strings.Repeat("x", n)
				pct := AnalyzePlatforms(text, platforms)[name].CharPercentage
				if pct < prev {
					t.Errorf("char_percentage decreased at length %d: %v < %v", n, pct, prev)
				}
				prev = pct
			}
		})
	}
}

// TestUnsuitablePlatforms verifies sorted unsuitable-platform extraction.
func TestUnsuitablePlatforms(t *testing.T) {
	text := strings.Repeat("a", 2500) // over twitter (280) and instagram (2200)
	verdicts := AnalyzePlatforms(text, DefaultPlatforms())

	got := UnsuitablePlatforms(verdicts)
	want := []string{"instagram", "twitter"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("UnsuitablePlatforms() = %v, want %v", got, want)
	}
}
