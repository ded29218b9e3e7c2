// Package textmetrics provides the stateless text statistics and pattern
// counting primitives the audit categories are built on.
package textmetrics

import (
	"math"
	"regexp"
	"strings"
)

var (
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
	nonLetter       = regexp.MustCompile(`[^a-z]`)
	silentEnding    = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY        = regexp.MustCompile(`^y`)
	vowelClusters   = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountSentences counts sentence fragments longer than 5 characters,
// splitting on ., ! and ?.
func CountSentences(text string) int {
	count := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		if len(strings.TrimSpace(s)) > 5 {
			count++
		}
	}
	return count
}

// SyllableCount estimates the syllables in a single word. The heuristic
// lowercases, strips non-letters, treats words of three letters or fewer as
// one syllable, drops a trailing silent-e/ed/es cluster and a leading y, and
// counts vowel clusters, with a floor of one.
func SyllableCount(word string) int {
	w := nonLetter.ReplaceAllString(strings.ToLower(word), "")
	if len(w) <= 3 {
		return 1
	}
	w = silentEnding.ReplaceAllString(w, "")
	w = leadingY.ReplaceAllString(w, "")

	matches := vowelClusters.FindAllString(w, -1)
	if len(matches) < 1 {
		return 1
	}
	return len(matches)
}

// FleschReadingEase computes the standard Flesch score:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// Returns 0 when the text has no words or no sentences.
func FleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	sentences := CountSentences(text)
	if len(words) == 0 || sentences == 0 {
		return 0
	}

	totalSyllables := 0
	for _, w := range words {
		totalSyllables += SyllableCount(w)
	}

	avgSentenceLength := float64(len(words)) / float64(sentences)
	avgSyllablesPerWord := float64(totalSyllables) / float64(len(words))

	return 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllablesPerWord
}

// ComplexWordCount counts words with four or more syllables.
func ComplexWordCount(text string) int {
	count := 0
	for _, w := range strings.Fields(text) {
		if SyllableCount(w) >= 4 {
			count++
		}
	}
	return count
}

// AvgSentenceLength returns the rounded average words per sentence, or 0
// when there are no sentences.
func AvgSentenceLength(text string) int {
	sentences := CountSentences(text)
	if sentences == 0 {
		return 0
	}
	return int(math.Round(float64(CountWords(text)) / float64(sentences)))
}

// CountPatternMatches sums the matches of each pattern over text. Patterns
// are matched independently, so overlapping groups may double-count the same
// span; matches within one pattern are non-overlapping.
func CountPatternMatches(text string, patterns []*regexp.Regexp) int {
	count := 0
	for _, p := range patterns {
		count += len(p.FindAllStringIndex(text, -1))
	}
	return count
}

// CountTransitionWords counts how many entries of words appear anywhere in
// text as a case-insensitive substring. Each entry counts at most once.
func CountTransitionWords(text string, words []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			count++
		}
	}
	return count
}

// Truncate shortens str to at most maxLen runes of output, appending an
// ellipsis when it cuts.
func Truncate(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	return str[:maxLen-3] + "..."
}
