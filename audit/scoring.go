package audit

// bracket pairs a minimum value with the score it earns. Brackets are
// listed descending by min; the first bracket whose min is at or below the
// value wins.
type bracket struct {
	min   float64
	score int
}

func thresholdScore(value float64, brackets []bracket) int {
	for _, b := range brackets {
		if value >= b.min {
			return b.score
		}
	}
	return 0
}

func statusFromScore(score, maxScore int) FactorStatus {
	pct := 0.0
	if maxScore > 0 {
		pct = float64(score) / float64(maxScore)
	}
	switch {
	case pct >= 0.7:
		return StatusGood
	case pct >= 0.3:
		return StatusNeedsImprovement
	default:
		return StatusCritical
	}
}

func makeFactor(name string, score, maxScore int, value string) Factor {
	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return Factor{
		Name:     name,
		Score:    score,
		MaxScore: maxScore,
		Value:    value,
		Status:   statusFromScore(score, maxScore),
	}
}

func sumScores(factors []Factor) (score, maxScore int) {
	for _, f := range factors {
		score += f.Score
		maxScore += f.MaxScore
	}
	return score, maxScore
}

func newCategory(key CategoryKey, factors []Factor) Category {
	score, maxScore := sumScores(factors)
	return Category{
		Key:      key,
		Name:     categoryNames[key],
		Score:    score,
		MaxScore: maxScore,
		Factors:  factors,
	}
}
