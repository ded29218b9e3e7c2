// Package scoring turns per-category audit results into a weighted overall
// score and a letter grade.
package scoring

import "github.com/geo-audit/backend/audit"

// Weights maps each category to its relative weight. Missing keys default
// to 1 during computation.
type Weights map[audit.CategoryKey]float64

// DefaultWeights treats every category equally.
func DefaultWeights() Weights {
	w := make(Weights, len(audit.CategoryKeys))
	for _, key := range audit.CategoryKeys {
		w[key] = 1
	}
	return w
}

// ScoreSummary is the aggregated outcome over all categories. OverallScore
// is the weighted percentage rounded to the nearest integer; TotalPoints
// and MaxPoints are unweighted raw sums.
type ScoreSummary struct {
	OverallScore int    `json:"overallScore"`
	Grade        string `json:"grade"`
	TotalPoints  int    `json:"totalPoints"`
	MaxPoints    int    `json:"maxPoints"`
}

// gradeThresholds is ordered descending; the first threshold at or below
// the score wins.
var gradeThresholds = []struct {
	min   int
	grade string
}{
	{95, "A+"},
	{90, "A"},
	{85, "A-"},
	{80, "B+"},
	{75, "B"},
	{70, "B-"},
	{65, "C+"},
	{60, "C"},
	{55, "C-"},
	{45, "D"},
	{0, "F"},
}

// Grade maps a 0..100 score onto the letter scale.
func Grade(score int) string {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return "F"
}

// ComputeScore aggregates the category results under the given weights.
// Each category contributes its percentage of max, scaled by its weight
// share. With a zero total weight every category falls back to an equal
// one-seventh share.
func ComputeScore(categories map[audit.CategoryKey]audit.Category, weights Weights) ScoreSummary {
	totalWeight := 0.0
	for _, key := range audit.CategoryKeys {
		if w, ok := weights[key]; ok {
			totalWeight += w
		} else {
			totalWeight++
		}
	}

	totalPoints := 0
	maxPoints := 0
	weightedScore := 0.0

	for key, category := range categories {
		totalPoints += category.Score
		maxPoints += category.MaxScore

		w, ok := weights[key]
		if !ok {
			w = 1
		}
		normalizedWeight := 1.0 / 7.0
		if totalWeight > 0 {
			normalizedWeight = w / totalWeight
		}
		categoryPct := 0.0
		if category.MaxScore > 0 {
			categoryPct = float64(category.Score) / float64(category.MaxScore) * 100
		}
		weightedScore += categoryPct * normalizedWeight
	}

	overall := int(weightedScore + 0.5)
	return ScoreSummary{
		OverallScore: overall,
		Grade:        Grade(overall),
		TotalPoints:  totalPoints,
		MaxPoints:    maxPoints,
	}
}
