package audit

import (
	"fmt"

	"github.com/geo-audit/backend/extractor"
)

func auditContentStructure(page *extractor.Page) (Category, map[string]any) {
	var factors []Factor

	h1 := page.Stats.H1Count
	h2 := page.Stats.H2Count
	h3 := page.Stats.H3Count
	headingScore := 0
	if h1 == 1 {
		headingScore += 4
	} else if h1 > 0 {
		headingScore += 2
	}
	if h2 >= 2 {
		headingScore += 4
	} else if h2 > 0 {
		headingScore += 2
	}
	if h3 > 0 {
		headingScore += 3
	}
	factors = append(factors, makeFactor("Heading Hierarchy", headingScore, 11,
		fmt.Sprintf("%d H1, %d H2, %d H3", h1, h2, h3)))

	listItems := page.Stats.ListItemCount
	listScore := thresholdScore(float64(listItems), []bracket{
		{10, 11}, {5, 8}, {1, 4}, {0, 0},
	})
	factors = append(factors, makeFactor("Lists Presence", listScore, 11,
		fmt.Sprintf("%d list items", listItems)))

	tables := page.Stats.TableCount
	tableScore := 0
	switch {
	case tables >= 2:
		tableScore = 8
	case tables >= 1:
		tableScore = 5
	}
	tableFactor := makeFactor("Tables Presence", tableScore, 8,
		fmt.Sprintf("%d table(s)", tables))
	if tables == 0 {
		tableFactor.Status = StatusNeutral
	}
	factors = append(factors, tableFactor)

	pCount := page.Stats.ParagraphCount
	avgParagraphWords := 0
	if pCount > 0 {
		avgParagraphWords = int(float64(page.Stats.WordCount)/float64(pCount) + 0.5)
	}
	paragraphScore := 2
	if avgParagraphWords >= 30 && avgParagraphWords <= 150 {
		paragraphScore = 11
	} else if avgParagraphWords > 0 && avgParagraphWords < 200 {
		paragraphScore = 7
	}
	factors = append(factors, makeFactor("Paragraph Structure", paragraphScore, 11,
		fmt.Sprintf("%d paragraphs, avg %d words", pCount, avgParagraphWords)))

	hasBold := len(page.Doc.SelectAll("strong, b")) > 0
	headingRatio := 0.0
	if pCount > 0 {
		headingRatio = float64(page.Stats.HeadingCount) / float64(pCount)
	}
	scanScore := 0
	if hasBold {
		scanScore += 4
	}
	if avgParagraphWords <= 150 {
		scanScore += 4
	}
	if headingRatio >= 0.1 {
		scanScore += 3
	}
	boldValue := "No bold text"
	if hasBold {
		boldValue = "Bold text found"
	}
	factors = append(factors, makeFactor("Scannability", scanScore, 11,
		fmt.Sprintf("%s, %.2f heading ratio", boldValue, headingRatio)))

	sectionData := measureSectionLengths(page.Doc)
	sectionScore := 0
	switch {
	case sectionData.SectionCount == 0:
		sectionScore = 0
	case sectionData.AvgWordsPerSection >= 120 && sectionData.AvgWordsPerSection <= 180:
		sectionScore = 12
	case sectionData.AvgWordsPerSection >= 80 && sectionData.AvgWordsPerSection <= 250:
		sectionScore = 8
	case sectionData.AvgWordsPerSection > 0:
		sectionScore = 4
	}
	sectionValue := "No headed sections found"
	if sectionData.SectionCount > 0 {
		sectionValue = fmt.Sprintf("%d sections, avg %d words",
			sectionData.SectionCount, sectionData.AvgWordsPerSection)
	}
	sectionFactor := makeFactor("Section Length", sectionScore, 12, sectionValue)
	if sectionData.SectionCount == 0 {
		sectionFactor.Status = StatusNeutral
	}
	factors = append(factors, sectionFactor)

	return newCategory(ContentStructure, factors), map[string]any{
		"sectionLengths": sectionData,
	}
}
