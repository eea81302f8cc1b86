package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
)

var (
	hashtagRegex = regexp.MustCompile(`#\w+`)
	mentionRegex = regexp.MustCompile(`@\w+`)
	urlRegex     = regexp.MustCompile(`https?://[^\s]+`)
)

// ctaPhrases is the fixed call-to-action vocabulary, matched
// case-insensitively as substrings.
var ctaPhrases = []string{
	"click", "share", "comment", "like", "follow", "subscribe",
	"buy", "learn", "discover", "explore", "join", "sign up",
	"check out", "visit", "download",
}

// emojiRanges covers the common emoji code-point blocks:
// miscellaneous symbols, dingbats, regional indicators, and the
// supplementary pictographic planes.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // Misc Symbols + Dingbats
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // Misc Symbols and Arrows (⭐ etc.)
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // Regional indicators (flags)
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // Misc Symbols and Pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // Emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // Transport and Map
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // Supplemental Symbols
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // Symbols and Pictographs Extended
	},
}

// AnalyzeSocialElements scans text for social-media-specific elements.
//
// For hashtags, mentions, URLs and emojis the Count is the total number
// of occurrences while the List holds the unique values in first-seen
// order — so "#go #go" counts 2 but lists ["#go"].
func AnalyzeSocialElements(text string) models.SocialAnalysis {
	hashtags := hashtagRegex.FindAllString(text, -1)
	mentions := mentionRegex.FindAllString(text, -1)
	urls := urlRegex.FindAllString(text, -1)
	emojis := findEmojis(text)

	return models.SocialAnalysis{
		Hashtags:     toElementList(hashtags),
		Mentions:     toElementList(mentions),
		URLs:         toElementList(urls),
		Emojis:       toElementList(emojis),
		Questions:    strings.Count(text, "?"),
		Exclamations: strings.Count(text, "!"),
		CTAElements:  countCTAElements(text),
	}
}

// findEmojis returns every emoji rune occurrence in the text.
func findEmojis(text string) []string {
	var emojis []string
	for _, r := range text {
		if unicode.Is(emojiRanges, r) {
			emojis = append(emojis, string(r))
		}
	}
	return emojis
}

// countCTAElements counts total occurrences of call-to-action phrases,
// case-insensitive.
func countCTAElements(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range ctaPhrases {
		count += strings.Count(lower, phrase)
	}
	return count
}

// toElementList builds an ElementList from raw matches: total count,
// unique values in first-seen order.
func toElementList(matches []string) models.ElementList {
	seen := make(map[string]bool)
	unique := []string{}
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			unique = append(unique, m)
		}
	}
	return models.ElementList{
		Count: len(matches),
		List:  unique,
	}
}
