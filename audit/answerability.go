package audit

import (
	"fmt"
	"regexp"

	"github.com/geo-audit/backend/extractor"
	"github.com/geo-audit/backend/textmetrics"
)

var questionFragment = regexp.MustCompile(`[^.!?]*\?`)

func auditAnswerability(page *extractor.Page) (Category, map[string]any) {
	text := page.CleanText
	var factors []Factor

	defCount := textmetrics.CountPatternMatches(text, textmetrics.DefinitionPatterns)
	defScore := thresholdScore(float64(defCount), []bracket{
		{6, 10}, {3, 7}, {1, 4}, {0, 0},
	})
	factors = append(factors, makeFactor("Definition Patterns", defScore, 10,
		fmt.Sprintf("%d definition patterns", defCount)))

	directCount := textmetrics.CountPatternMatches(text, textmetrics.DirectAnswerPatterns)
	directScore := thresholdScore(float64(directCount), []bracket{
		{5, 11}, {2, 8}, {1, 4}, {0, 0},
	})
	factors = append(factors, makeFactor("Direct Answer Statements", directScore, 11,
		fmt.Sprintf("%d direct statements", directCount)))

	capsules := detectAnswerCapsules(page.Doc)
	capsuleScore := 0
	capsuleValue := "No question-framed H2s found"
	if capsules.Total > 0 {
		ratio := float64(capsules.WithCapsule) / float64(capsules.Total)
		switch {
		case ratio >= 0.7:
			capsuleScore = 13
		case ratio >= 0.4:
			capsuleScore = 9
		case ratio > 0:
			capsuleScore = 5
		default:
			capsuleScore = 2
		}
		capsuleValue = fmt.Sprintf("%d/%d question headings have answer capsules",
			capsules.WithCapsule, capsules.Total)
	}
	capsuleFactor := makeFactor("Answer Capsules", capsuleScore, 13, capsuleValue)
	if capsules.Total == 0 {
		capsuleFactor.Status = StatusNeutral
	}
	factors = append(factors, capsuleFactor)

	stepCount := textmetrics.CountPatternMatches(text, textmetrics.StepPatterns)
	hasOl := len(page.Doc.SelectAll("ol")) > 0
	stepTotal := stepCount
	stepValue := fmt.Sprintf("%d step indicators", stepCount)
	if hasOl {
		stepTotal += 2
		stepValue += ", ordered lists found"
	}
	stepScore := thresholdScore(float64(stepTotal), []bracket{
		{5, 10}, {2, 7}, {1, 3}, {0, 0},
	})
	factors = append(factors, makeFactor("Step-by-Step Content", stepScore, 10, stepValue))

	questions := questionFragment.FindAllString(text, -1)
	queryMatches := textmetrics.CountPatternMatches(text, textmetrics.QuestionPatterns)
	qaScore := thresholdScore(float64(len(questions)+queryMatches), []bracket{
		{10, 11}, {5, 8}, {2, 5}, {1, 2}, {0, 0},
	})
	factors = append(factors, makeFactor("Q/A Patterns", qaScore, 11,
		fmt.Sprintf("%d questions, %d query patterns", len(questions), queryMatches)))

	summaryCount := textmetrics.CountPatternMatches(text, textmetrics.SummaryMarkers)
	summaryScore := 0
	summaryValue := "No summary markers"
	switch {
	case summaryCount >= 2:
		summaryScore = 9
	case summaryCount > 0:
		summaryScore = 5
	}
	if summaryCount > 0 {
		summaryValue = fmt.Sprintf("%d summary markers", summaryCount)
	}
	factors = append(factors, makeFactor("Summary/Conclusion", summaryScore, 9, summaryValue))

	if len(questions) > 5 {
		questions = questions[:5]
	}
	rawData := map[string]any{
		"answerCapsules": capsules,
		"questionsFound": questions,
	}

	return newCategory(Answerability, factors), rawData
}
