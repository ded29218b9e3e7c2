package scoring

import (
	"testing"

	"github.com/geo-audit/backend/audit"
)

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A+"},
		{95, "A+"},
		{94, "A"},
		{90, "A"},
		{85, "A-"},
		{80, "B+"},
		{75, "B"},
		{70, "B-"},
		{69, "C+"},
		{65, "C+"},
		{60, "C"},
		{55, "C-"},
		{45, "D"},
		{44, "F"},
		{30, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func category(key audit.CategoryKey, score, maxScore int) audit.Category {
	return audit.Category{
		Key:      key,
		Name:     audit.DisplayName(key),
		Score:    score,
		MaxScore: maxScore,
	}
}

func TestComputeScoreEqualWeights(t *testing.T) {
	categories := map[audit.CategoryKey]audit.Category{}
	for _, key := range audit.CategoryKeys {
		categories[key] = category(key, 50, 100)
	}

	summary := ComputeScore(categories, DefaultWeights())
	if summary.OverallScore != 50 {
		t.Errorf("Expected overall score 50, got %d", summary.OverallScore)
	}
	if summary.TotalPoints != 350 || summary.MaxPoints != 700 {
		t.Errorf("Expected raw points 350/700, got %d/%d", summary.TotalPoints, summary.MaxPoints)
	}
	if summary.Grade != "C-" {
		t.Errorf("Expected grade C- for 50, got %s", summary.Grade)
	}
}

func TestComputeScoreWeighted(t *testing.T) {
	// Absent categories contribute nothing, but every weight entry counts
	// toward the normalizing total.
	categories := map[audit.CategoryKey]audit.Category{
		audit.Answerability: category(audit.Answerability, 10, 10),
		audit.EntityClarity: category(audit.EntityClarity, 0, 10),
	}
	weights := Weights{
		audit.Answerability: 2,
		audit.EntityClarity: 1,
	}
	// Total weight = 2 + 1 + five missing defaulting to 1 = 8.
	// 100*(2/8) + 0*(1/8) = 25.
	summary := ComputeScore(categories, weights)
	if summary.OverallScore != 25 {
		t.Errorf("Expected weighted score 25, got %d", summary.OverallScore)
	}
}

func TestComputeScoreZeroWeights(t *testing.T) {
	categories := map[audit.CategoryKey]audit.Category{}
	weights := Weights{}
	for _, key := range audit.CategoryKeys {
		categories[key] = category(key, 0, 0)
		weights[key] = 0
	}

	summary := ComputeScore(categories, weights)
	if summary.OverallScore != 0 {
		t.Errorf("Expected 0 for all-zero input, got %d", summary.OverallScore)
	}
	if summary.Grade != "F" {
		t.Errorf("Expected grade F, got %s", summary.Grade)
	}
}

func TestComputeScoreMissingWeightDefaults(t *testing.T) {
	categories := map[audit.CategoryKey]audit.Category{
		audit.Answerability: category(audit.Answerability, 10, 10),
	}
	// Weight map covering only one key: the other six default to 1, total 7.
	summary := ComputeScore(categories, Weights{audit.Answerability: 1})
	// 100 * (1/7) rounds to 14.
	if summary.OverallScore != 14 {
		t.Errorf("Expected 14, got %d", summary.OverallScore)
	}
}
