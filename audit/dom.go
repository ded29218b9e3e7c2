package audit

import (
	"regexp"
	"strings"

	"github.com/geo-audit/backend/extractor"
	"github.com/geo-audit/backend/textmetrics"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

var sentenceEnd = regexp.MustCompile(`[.!?]`)

// AnswerCapsules counts question-framed H2 headings and how many are
// immediately answered by a short first sentence.
type AnswerCapsules struct {
	Total       int `json:"total"`
	WithCapsule int `json:"withCapsule"`
}

// SectionLengths reports the word counts of headed sections: the text
// between one heading and the next.
type SectionLengths struct {
	SectionCount       int   `json:"sectionCount"`
	AvgWordsPerSection int   `json:"avgWordsPerSection"`
	Sections           []int `json:"sections"`
}

func firstSelectorMatch(doc extractor.Document, selectors []string) (extractor.Node, bool) {
	for _, selector := range selectors {
		if nodes := doc.SelectAll(selector); len(nodes) > 0 {
			return nodes[0], true
		}
	}
	return nil, false
}

func trimText(doc extractor.Document, n extractor.Node) string {
	return strings.TrimSpace(doc.Text(n))
}

// detectAnswerCapsules walks every H2 that reads as a question and checks
// whether the first paragraph that follows it opens with a sentence of at
// most 200 characters.
func detectAnswerCapsules(doc extractor.Document) AnswerCapsules {
	var capsules AnswerCapsules

	for _, h2 := range doc.SelectAll("h2") {
		heading := trimText(doc, h2)
		isQuestion := strings.Contains(heading, "?") ||
			textmetrics.QuestionHeadingPattern.MatchString(heading)
		if !isQuestion {
			continue
		}
		capsules.Total++

		var firstParagraph extractor.Node
		for _, sib := range doc.SiblingsAfter(h2) {
			if doc.Is(sib, "p") {
				firstParagraph = sib
				break
			}
		}
		if firstParagraph == nil {
			continue
		}

		pText := trimText(doc, firstParagraph)
		firstSentence := sentenceEnd.Split(pText, 2)[0]
		if len(firstSentence) > 0 && len(firstSentence) <= 200 {
			capsules.WithCapsule++
		}
	}

	return capsules
}

// measureSectionLengths sums the words of the sibling content between each
// heading and the next heading. Empty sections are skipped.
func measureSectionLengths(doc extractor.Document) SectionLengths {
	headings := doc.SelectAll(headingSelector)
	if len(headings) == 0 {
		return SectionLengths{Sections: []int{}}
	}

	sections := []int{}
	total := 0
	for _, h := range headings {
		words := 0
		for _, sib := range doc.SiblingsAfter(h) {
			if doc.Is(sib, headingSelector) {
				break
			}
			words += textmetrics.CountWords(trimText(doc, sib))
		}
		if words > 0 {
			sections = append(sections, words)
			total += words
		}
	}

	avg := 0
	if len(sections) > 0 {
		avg = int(float64(total)/float64(len(sections)) + 0.5)
	}

	return SectionLengths{
		SectionCount:       len(sections),
		AvgWordsPerSection: avg,
		Sections:           sections,
	}
}
