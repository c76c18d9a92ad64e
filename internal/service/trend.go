package service

import "github.com/noah-isme/child-therapy-api/internal/models"

// ClassifyTrend compares the first and second half of a chronological score
// sequence. The split is at n/2 (floor), so for odd lengths the first half
// is the smaller one. Equal half-means classify as stable. Fewer than two
// points is insufficient data, never a guess.
//
// This is deliberately a coarse two-bucket mean comparison; consumers depend
// on this exact split and tie-break, so it must not be replaced with a
// fitted slope.
func ClassifyTrend(scores []float64) models.Trend {
	if len(scores) < 2 {
		return models.TrendInsufficientData
	}

	mid := len(scores) / 2
	firstAvg := mean(scores[:mid])
	secondAvg := mean(scores[mid:])

	switch {
	case secondAvg > firstAvg:
		return models.TrendImproving
	case secondAvg < firstAvg:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
