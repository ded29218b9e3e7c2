package recommend

import (
	"strings"
	"testing"

	"github.com/geo-audit/backend/audit"
)

func resultWith(factors ...audit.Factor) audit.Result {
	score, maxScore := 0, 0
	for _, f := range factors {
		score += f.Score
		maxScore += f.MaxScore
	}
	return audit.Result{
		Categories: map[audit.CategoryKey]audit.Category{
			audit.ContentExtractability: {
				Key:      audit.ContentExtractability,
				Name:     audit.DisplayName(audit.ContentExtractability),
				Score:    score,
				MaxScore: maxScore,
				Factors:  factors,
			},
		},
		RawData: map[string]any{},
	}
}

func factor(name string, score, maxScore int) audit.Factor {
	return audit.Factor{Name: name, Score: score, MaxScore: maxScore, Value: "v"}
}

func TestGenerateSkipsHealthyFactors(t *testing.T) {
	recs := Generate(resultWith(
		factor("Fetch Success", 7, 10),  // exactly 70%
		factor("Lists Presence", 8, 10), // above
	))
	if len(recs) != 0 {
		t.Errorf("Factors at or above 70%% should be skipped, got %d recommendations", len(recs))
	}
}

func TestGeneratePriorityBoundaries(t *testing.T) {
	tests := []struct {
		score, max int
		want       Priority
	}{
		{69, 100, PriorityLow},
		{50, 100, PriorityLow},
		{49, 100, PriorityMedium},
		{30, 100, PriorityMedium},
		{29, 100, PriorityHigh},
		{0, 100, PriorityHigh},
	}
	for _, tt := range tests {
		recs := Generate(resultWith(factor("Fetch Success", tt.score, tt.max)))
		if len(recs) != 1 {
			t.Fatalf("Expected 1 recommendation for %d/%d", tt.score, tt.max)
		}
		if recs[0].Priority != tt.want {
			t.Errorf("%d/%d: priority = %s, want %s", tt.score, tt.max, recs[0].Priority, tt.want)
		}
	}
}

func TestGenerateZeroMaxScoreSkipped(t *testing.T) {
	recs := Generate(resultWith(factor("Odd Factor", 0, 0)))
	if len(recs) != 0 {
		t.Errorf("Zero max score should be skipped, got %d recommendations", len(recs))
	}
}

func TestGenerateDeterministicOrdering(t *testing.T) {
	recs := Generate(resultWith(
		factor("Lists Presence", 6, 10),  // low
		factor("Fetch Success", 0, 10),   // high
		factor("Citation Patterns", 0, 10), // high
		factor("Tables Presence", 4, 10), // medium
	))

	wantOrder := []string{"Citation Patterns", "Fetch Success", "Tables Presence", "Lists Presence"}
	if len(recs) != len(wantOrder) {
		t.Fatalf("Expected %d recommendations, got %d", len(wantOrder), len(recs))
	}
	for i, want := range wantOrder {
		if recs[i].Factor != want {
			t.Errorf("Position %d: got %s, want %s", i, recs[i].Factor, want)
		}
	}
}

func TestGenerateWordCountContext(t *testing.T) {
	result := resultWith(factor("Word Count Adequacy", 2, 12))
	result.RawData["wordCount"] = 87

	recs := Generate(result)
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Priority != PriorityHigh {
		t.Errorf("2/12 should be high priority, got %s", recs[0].Priority)
	}
	if !strings.Contains(recs[0].Recommendation, "87 words") {
		t.Errorf("Advice should name the measured word count, got %q", recs[0].Recommendation)
	}
}

func TestGenerateCrawlerContext(t *testing.T) {
	result := resultWith(factor("AI Crawler Access", 3, 10))
	result.RawData["crawlerAccess"] = audit.CrawlerAccess{
		Blocked: []string{"GPTBot", "ClaudeBot"},
	}

	recs := Generate(result)
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if !strings.Contains(recs[0].Recommendation, "GPTBot") {
		t.Errorf("Advice should name the blocked crawlers, got %q", recs[0].Recommendation)
	}
}

func TestGenerateSectionLengthContext(t *testing.T) {
	result := resultWith(factor("Section Length", 4, 12))
	result.RawData["sectionLengths"] = audit.SectionLengths{
		SectionCount:       3,
		AvgWordsPerSection: 45,
	}

	recs := Generate(result)
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if !strings.Contains(recs[0].Recommendation, "45 words") {
		t.Errorf("Advice should name the measured average, got %q", recs[0].Recommendation)
	}
}

func TestGenerateUnknownFactorFallback(t *testing.T) {
	recs := Generate(resultWith(factor("Brand New Factor", 0, 10)))
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if !strings.Contains(recs[0].Recommendation, "Brand New Factor") {
		t.Errorf("Fallback advice should name the factor, got %q", recs[0].Recommendation)
	}
}

func TestStaticAdviceCoversKnownFactors(t *testing.T) {
	for _, name := range []string{
		"Boilerplate Ratio", "Heading Hierarchy", "Definition Patterns",
		"Entity Density", "Numeric Claims", "Publication Date", "Readability",
	} {
		if _, ok := staticAdvice[name]; !ok {
			t.Errorf("Missing static advice for %q", name)
		}
	}
}
