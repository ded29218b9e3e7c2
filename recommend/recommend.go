// Package recommend derives actionable advice from audit results. Every
// factor scoring under 70% of its maximum produces one recommendation,
// prioritized by how far short it fell.
package recommend

import (
	"fmt"
	"sort"

	"github.com/geo-audit/backend/audit"
	"github.com/geo-audit/backend/textmetrics"
)

// Priority ranks how urgently a recommendation should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Recommendation is one piece of advice tied to a specific audit factor.
type Recommendation struct {
	Category       string   `json:"category"`
	Factor         string   `json:"factor"`
	CurrentValue   string   `json:"currentValue"`
	Priority       Priority `json:"priority"`
	Recommendation string   `json:"recommendation"`
}

// Generate walks every factor of every category and emits advice for the
// ones scoring below 70% of their maximum. The output ordering is
// deterministic: priority rank first, then factor name.
func Generate(result audit.Result) []Recommendation {
	recommendations := []Recommendation{}

	for _, category := range result.Categories {
		for _, factor := range category.Factors {
			pct := 1.0
			if factor.MaxScore > 0 {
				pct = float64(factor.Score) / float64(factor.MaxScore)
			}
			if pct >= 0.7 {
				continue
			}

			priority := PriorityLow
			switch {
			case pct < 0.3:
				priority = PriorityHigh
			case pct < 0.5:
				priority = PriorityMedium
			}

			recommendations = append(recommendations, Recommendation{
				Category:       category.Name,
				Factor:         factor.Name,
				CurrentValue:   factor.Value,
				Priority:       priority,
				Recommendation: adviceFor(factor.Name, result.RawData),
			})
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if priorityRank[a.Priority] != priorityRank[b.Priority] {
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}
		return a.Factor < b.Factor
	})

	return recommendations
}

// adviceFor resolves the registry entry for the factor name. Unknown names
// get a generic templated fallback rather than being dropped, so new
// factors degrade gracefully.
func adviceFor(factorName string, rawData map[string]any) string {
	if builder, ok := contextBuilders[factorName]; ok {
		return builder(rawData)
	}
	if text, ok := staticAdvice[factorName]; ok {
		return text
	}
	return fmt.Sprintf("Review and improve %q based on best practices for generative engine readiness.", factorName)
}

// contextBuilders produce advice that interpolates measured values, making
// the guidance concrete instead of generic.
var contextBuilders = map[string]func(rawData map[string]any) string{
	"Word Count Adequacy": func(rawData map[string]any) string {
		wordCount, _ := rawData["wordCount"].(int)
		return fmt.Sprintf("The page has %d words. Ensure the page has sufficient content (300-3000 words) to provide comprehensive coverage. Thin content is less useful for generative engines to reference.", wordCount)
	},
	"AI Crawler Access": func(rawData map[string]any) string {
		access, ok := rawData["crawlerAccess"].(audit.CrawlerAccess)
		if !ok || len(access.Blocked) == 0 {
			return "Your robots.txt is blocking AI crawlers. Ensure GPTBot, ClaudeBot, PerplexityBot, and Google-Extended are allowed. Blocking these crawlers means your content cannot be discovered or cited by generative engines."
		}
		return fmt.Sprintf("Your robots.txt is blocking these AI crawlers: %v. Unblock them so your content can be discovered and cited by generative engines.", access.Blocked)
	},
	"Section Length": func(rawData map[string]any) string {
		lengths, ok := rawData["sectionLengths"].(audit.SectionLengths)
		if !ok || lengths.SectionCount == 0 {
			return staticAdvice["Section Length"]
		}
		return fmt.Sprintf("Sections currently average %d words. Aim for 120-180 words between headings. Each headed section should be a complete, self-contained unit of information that a generative engine could extract and reuse.", lengths.AvgWordsPerSection)
	},
	"Entity Richness": func(rawData map[string]any) string {
		entities, ok := rawDataEntities(rawData)
		if !ok {
			return staticAdvice["Entity Richness"]
		}
		return fmt.Sprintf("Found %d people, %d organizations, %d places and %d topics. Reference relevant experts, organizations, and places in your field. Named entities help generative engines understand context.",
			len(entities.People), len(entities.Organizations), len(entities.Places), len(entities.Topics))
	},
}

func rawDataEntities(rawData map[string]any) (textmetrics.Entities, bool) {
	e, ok := rawData["entities"].(textmetrics.Entities)
	return e, ok
}
