package audit

import (
	"fmt"

	"github.com/geo-audit/backend/extractor"
	"github.com/geo-audit/backend/textmetrics"
)

func auditReadabilityForCompression(page *extractor.Page) (Category, map[string]any) {
	text := page.CleanText
	var factors []Factor

	avgSentLen := textmetrics.AvgSentenceLength(text)
	sentScore := 0
	switch {
	case avgSentLen >= 12 && avgSentLen <= 22:
		sentScore = 15
	case avgSentLen >= 8 && avgSentLen < 30:
		sentScore = 10
	case avgSentLen > 0:
		sentScore = 5
	}
	factors = append(factors, makeFactor("Sentence Length", sentScore, 15,
		fmt.Sprintf("Avg %d words/sentence", avgSentLen)))

	fre := textmetrics.FleschReadingEase(text)
	freScore := 3
	switch {
	case fre >= 60 && fre <= 70:
		freScore = 15
	case fre > 70:
		freScore = 13
	case fre >= 50:
		freScore = 10
	case fre >= 30:
		freScore = 6
	}
	factors = append(factors, makeFactor("Readability", freScore, 15,
		fmt.Sprintf("Flesch Reading Ease: %.1f", fre)))

	totalWords := textmetrics.CountWords(text)
	complex := textmetrics.ComplexWordCount(text)
	jargonRatio := 0.0
	if totalWords > 0 {
		jargonRatio = float64(complex) / float64(totalWords)
	}
	jargonScore := 3
	switch {
	case jargonRatio <= 0.02:
		jargonScore = 15
	case jargonRatio <= 0.05:
		jargonScore = 12
	case jargonRatio <= 0.10:
		jargonScore = 8
	}
	factors = append(factors, makeFactor("Jargon Density", jargonScore, 15,
		fmt.Sprintf("%.1f%% complex words", jargonRatio*100)))

	transCount := textmetrics.CountTransitionWords(text, textmetrics.TransitionWords)
	transScore := thresholdScore(float64(transCount), []bracket{
		{10, 15}, {5, 11}, {2, 7}, {1, 3}, {0, 0},
	})
	factors = append(factors, makeFactor("Transition Usage", transScore, 15,
		fmt.Sprintf("%d transition types found", transCount)))

	return newCategory(ReadabilityForCompression, factors), map[string]any{
		"avgSentenceLength": avgSentLen,
		"readabilityScore":  fre,
	}
}
