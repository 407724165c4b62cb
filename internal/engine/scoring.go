package engine

// Tier is the qualification level assigned from the score.
type Tier string

const (
	TierSQL Tier = "SQL" // sales-qualified, score >= 80
	TierSSL Tier = "SSL" // semi-qualified, 50 <= score < 80
	TierDQ  Tier = "DQ"  // disqualified, score < 50
)

// Tier thresholds.
const (
	sqlThreshold = 80
	sslThreshold = 50
	maxScore     = 100
)

// QualificationResult is the scored outcome for one evaluation.
type QualificationResult struct {
	Score   int
	Tier    Tier
	Urgency Urgency
}

// Score sums all category weights and clamps to [0,100]. Weights are
// non-negative, so the lower bound never engages.
func Score(signals SignalSet) int {
	total := 0
	for _, weight := range signals {
		total += weight
	}
	if total > maxScore {
		return maxScore
	}
	return total
}

// TierForScore assigns the qualification tier from the score alone.
func TierForScore(score int) Tier {
	switch {
	case score >= sqlThreshold:
		return TierSQL
	case score >= sslThreshold:
		return TierSSL
	default:
		return TierDQ
	}
}
