package analyzer

import (
	"strings"
	"unicode"

	"github.com/vivekbajpai82/Social-Media-Content-Analyzer/internal/models"
)

// readingSpeedWPM is the assumed average reading speed.
const readingSpeedWPM = 200.0

// AnalyzeReadability computes standard readability indices.
//
// Formulas:
//
//	flesch_reading_ease  = 206.835 − 1.015·(words/sentences) − 84.6·(syllables/words)
//	flesch_kincaid_grade = 0.39·(words/sentences) + 11.8·(syllables/words) − 15.59
//	ARI                  = 4.71·(chars/words) + 0.5·(words/sentences) − 21.43
//	coleman_liau         = 0.0588·L − 0.296·S − 15.8  (L, S per 100 words)
//
// When the text has no words or sentences every score is zero — the
// indices are undefined there, and "insufficient text" is more useful
// than an error or a NaN.
func AnalyzeReadability(text string) models.ReadabilityScores {
	words := strings.Fields(text)
	sentences := splitSentences(text)

	if len(words) == 0 || len(sentences) == 0 {
		return models.ReadabilityScores{}
	}

	syllables := 0
	letters := 0
	for _, w := range words {
		syllables += countSyllables(w)
		letters += countLetters(w)
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))
	lettersPerWord := float64(letters) / float64(len(words))

	// L = average letters per 100 words, S = average sentences per 100 words
	l := lettersPerWord * 100
	s := float64(len(sentences)) / float64(len(words)) * 100

	return models.ReadabilityScores{
		FleschReadingEase:         round2(206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord),
		FleschKincaidGrade:        round2(0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59),
		AutomatedReadabilityIndex: round2(4.71*lettersPerWord + 0.5*wordsPerSentence - 21.43),
		ColemanLiauIndex:          round2(0.0588*l - 0.296*s - 15.8),
		ReadingTimeMinutes:        round1(float64(len(words)) / readingSpeedWPM),
	}
}

// countSyllables approximates syllable count using vowel groups:
// each maximal run of vowels counts as one syllable, a silent trailing
// "e" is dropped, and every word has at least one syllable.
// Deterministic by construction; not a linguistic contract.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}

	isVowel := func(r rune) bool {
		return strings.ContainsRune("aeiouy", r)
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing "e" ("make", "note") — but keep "le" endings ("table").
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

// countLetters counts letters and digits, the character base for ARI
// and Coleman-Liau.
func countLetters(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
