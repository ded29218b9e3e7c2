package audit

import (
	"fmt"
	"strings"

	"github.com/geo-audit/backend/extractor"
	"github.com/geo-audit/backend/textmetrics"
)

func auditEntityClarity(page *extractor.Page) (Category, map[string]any) {
	text := page.CleanText
	var factors []Factor

	entities := textmetrics.ExtractEntities(text)
	totalEntities := entities.Total()

	richScore := thresholdScore(float64(totalEntities), []bracket{
		{9, 20}, {4, 14}, {1, 7}, {0, 0},
	})
	richFactor := makeFactor("Entity Richness", richScore, 20,
		fmt.Sprintf("%d entities (%d people, %d orgs, %d places)",
			totalEntities, len(entities.People), len(entities.Organizations), len(entities.Places)))
	if totalEntities == 0 {
		richFactor.Status = StatusNeutral
	}
	factors = append(factors, richFactor)

	keyWords := titleKeywords(page)
	textLower := strings.ToLower(text)
	topicLower := make([]string, len(entities.Topics))
	for i, t := range entities.Topics {
		topicLower[i] = strings.ToLower(t)
	}

	topicOverlap := 0
	for _, kw := range keyWords {
		inTopics := false
		for _, t := range topicLower {
			if strings.Contains(t, kw) {
				inTopics = true
				break
			}
		}
		if inTopics || strings.Count(textLower, kw) >= 3 {
			topicOverlap++
		}
	}

	consistencyRatio := 0.0
	if len(keyWords) > 0 {
		consistencyRatio = float64(topicOverlap) / float64(len(keyWords))
	}
	consistencyScore := 5
	switch {
	case consistencyRatio >= 0.5:
		consistencyScore = 25
	case consistencyRatio > 0:
		consistencyScore = 15
	}
	factors = append(factors, makeFactor("Topic Consistency", consistencyScore, 25,
		fmt.Sprintf("%d/%d title keywords align with content topics", topicOverlap, len(keyWords))))

	wordCount := textmetrics.CountWords(text)
	densityPer100 := 0.0
	if wordCount > 0 {
		densityPer100 = float64(totalEntities) / float64(wordCount) * 100
	}
	densityScore := 3
	switch {
	case densityPer100 >= 2 && densityPer100 <= 8:
		densityScore = 15
	case densityPer100 >= 1, densityPer100 > 8:
		densityScore = 10
	}
	factors = append(factors, makeFactor("Entity Density", densityScore, 15,
		fmt.Sprintf("%.1f entities per 100 words", densityPer100)))

	return newCategory(EntityClarity, factors), map[string]any{
		"entities": entities,
	}
}

// titleKeywords extracts the unique words longer than three letters from
// the title and the first H1, in order of first appearance.
func titleKeywords(page *extractor.Page) []string {
	var keyWords []string
	seen := make(map[string]bool)

	collect := func(text string) {
		for _, w := range strings.Fields(strings.ToLower(text)) {
			if len(w) > 3 && !seen[w] {
				seen[w] = true
				keyWords = append(keyWords, w)
			}
		}
	}

	collect(page.Title)
	if h1s := page.Doc.SelectAll("h1"); len(h1s) > 0 {
		collect(page.Doc.Text(h1s[0]))
	}
	return keyWords
}
