package service

import (
	"fmt"
	"strings"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

// Recommendation holds the generated guidance for one domain. Alert is only
// ever set for the behavior domain.
type Recommendation struct {
	Message string
	Alert   string
}

// RecommendForDomain maps a domain's averaged score onto natural-language
// guidance. Thresholds are evaluated in order, first match wins:
// below 40 flags lagging progress (plus a behavior alert when applicable),
// 40-59 encourages continued work, 60-79 produces nothing, 80 and above
// praises the current approach.
//
// A domain that was never assessed averages 0 and therefore still lands in
// the lowest bucket; callers wanting to suppress that must check the session
// counts themselves.
func RecommendForDomain(domain models.DomainKey, score float64) Recommendation {
	name := humanizeDomain(domain)

	switch {
	case score < 40:
		rec := Recommendation{
			Message: fmt.Sprintf("Focus more on %s - current progress is below expectations", name),
		}
		if domain == models.DomainBehavior {
			rec.Alert = fmt.Sprintf("Behavioral concerns detected - score: %.1f%%", score)
		}
		return rec
	case score < 60:
		return Recommendation{
			Message: fmt.Sprintf("Continue working on %s - showing some progress", name),
		}
	case score >= 80:
		return Recommendation{
			Message: fmt.Sprintf("Excellent progress in %s - maintain current approach", name),
		}
	default:
		return Recommendation{}
	}
}

// humanizeDomain turns "daily_living_skills" into "Daily Living Skills".
func humanizeDomain(domain models.DomainKey) string {
	words := strings.Split(string(domain), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
