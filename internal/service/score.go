package service

import (
	"math"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

// CalculateDomainScore reduces one domain's ratings for a single session
// into a weighted 0-100 score with per-rating counts. Unknown rating values
// are excluded from both numerator and denominator. A domain with no counted
// ratings yields Total == 0 and Score == 0, which means "not assessed".
func CalculateDomainScore(assessment models.Assessment) models.DomainScore {
	var score models.DomainScore
	if assessment == nil {
		return score
	}

	for _, rating := range assessment.Ratings() {
		switch rating {
		case models.RatingGood:
			score.Good++
		case models.RatingAverage:
			score.Average++
		case models.RatingNoImprovement:
			score.NoImprovement++
		default:
			continue
		}
		score.Total++
	}

	if score.Total == 0 {
		return score
	}

	weighted := float64(score.Good*3+score.Average*2+score.NoImprovement) / float64(score.Total*3) * 100
	score.Score = round1(weighted)
	return score
}

// AverageScores returns the 1-decimal arithmetic mean of the given session
// scores, or 0 for an empty slice. Callers must pre-filter unassessed
// sessions (Total == 0): excluding them is what distinguishes "not assessed"
// from "assessed poorly".
func AverageScores(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return round1(sum / float64(len(scores)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
