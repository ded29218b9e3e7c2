// Package report renders analyzer results as plain text, Markdown or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/geo-audit/backend/analyzer"
	"github.com/geo-audit/backend/audit"
	"github.com/geo-audit/backend/recommend"
)

// Render formats the result in the requested format: "pretty", "md" or
// "json".
func Render(result *analyzer.Result, format string) (string, error) {
	switch format {
	case "", "pretty":
		return renderPretty(result), nil
	case "md":
		return renderMarkdown(result), nil
	case "json":
		return renderJSON(result)
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

func renderJSON(result *analyzer.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(data), nil
}

// orderedCategories returns the categories in canonical display order,
// skipping any that are absent.
func orderedCategories(result *analyzer.Result) []audit.Category {
	categories := make([]audit.Category, 0, len(result.Categories))
	for _, key := range audit.CategoryKeys {
		if category, ok := result.Categories[key]; ok {
			categories = append(categories, category)
		}
	}
	return categories
}

func pct(score, max int) int {
	if max <= 0 {
		return 0
	}
	return int(float64(score)/float64(max)*100 + 0.5)
}

func renderPretty(result *analyzer.Result) string {
	const width = 60
	divider := strings.Repeat("=", width)
	thinDivider := strings.Repeat("-", width)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("")
	line(divider)
	line("  AI Search Readiness Report")
	line("  %s", result.URL)
	line(divider)
	line("")
	line("  Overall Score: %d/100  Grade: %s", result.OverallScore, result.Grade)
	line("  Points: %d/%d", result.TotalPoints, result.MaxPoints)
	line("")
	line(thinDivider)

	for _, category := range orderedCategories(result) {
		line("")
		line("  %-38s %s %d/%d (%d%%)",
			category.Name,
			dots(40-len(category.Name)),
			category.Score, category.MaxScore,
			pct(category.Score, category.MaxScore))

		for _, factor := range category.Factors {
			name := "  " + factor.Name
			line("  %-40s %s %d/%d %s",
				name,
				dots(42-len(factor.Name)),
				factor.Score, factor.MaxScore,
				factor.Value)
		}
	}

	line("")
	line(thinDivider)

	if len(result.Recommendations) > 0 {
		line("")
		line("  Recommendations:")
		line("")
		for i, rec := range result.Recommendations {
			line("  %d. %s %s", i+1, priorityTag(rec.Priority), rec.Factor)
			line("     %s", rec.Recommendation)
			line("")
		}
	}

	line(divider)
	line("  Analyzed at: %s", result.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
	line("  Duration: %dms", result.Meta.AnalysisDurationMs)
	if strings.HasPrefix(result.URL, "http://") {
		line("  Note: Audited over HTTP. Domain signals (robots.txt, llms.txt) may differ in production.")
	}
	line(divider)
	line("")

	return b.String()
}

func dots(n int) string {
	if n < 2 {
		n = 2
	}
	return strings.Repeat(".", n)
}

func priorityTag(p recommend.Priority) string {
	switch p {
	case recommend.PriorityHigh:
		return "[HIGH]"
	case recommend.PriorityMedium:
		return "[MED] "
	default:
		return "[LOW] "
	}
}

func renderMarkdown(result *analyzer.Result) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("# AI Search Readiness Report")
	line("")
	line("**URL:** %s", result.URL)
	line("")
	line("**Overall Score:** %d/100 (%s), %d/%d points",
		result.OverallScore, result.Grade, result.TotalPoints, result.MaxPoints)
	line("")

	for _, category := range orderedCategories(result) {
		line("## %s: %d/%d (%d%%)",
			category.Name, category.Score, category.MaxScore,
			pct(category.Score, category.MaxScore))
		line("")
		line("| Factor | Score | Status | Value |")
		line("| --- | --- | --- | --- |")
		for _, factor := range category.Factors {
			line("| %s | %d/%d | %s | %s |",
				factor.Name, factor.Score, factor.MaxScore, factor.Status,
				strings.ReplaceAll(factor.Value, "|", "\\|"))
		}
		line("")
	}

	if len(result.Recommendations) > 0 {
		line("## Recommendations")
		line("")
		for i, rec := range result.Recommendations {
			line("%d. **[%s]** %s (%s): %s",
				i+1, strings.ToUpper(string(rec.Priority)), rec.Factor,
				rec.Category, rec.Recommendation)
		}
		line("")
	}

	line("---")
	line("")
	line("*Analyzed at %s in %dms (v%s)*",
		result.AnalyzedAt.Format("2006-01-02 15:04:05 MST"),
		result.Meta.AnalysisDurationMs, result.Meta.Version)

	return b.String()
}
