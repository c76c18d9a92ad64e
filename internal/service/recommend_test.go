package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

func TestRecommendForDomainThresholds(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		want  string
	}{
		{"just below 40", 39.9, "Focus more on Social Skills - current progress is below expectations"},
		{"exactly 40", 40.0, "Continue working on Social Skills - showing some progress"},
		{"just below 60", 59.9, "Continue working on Social Skills - showing some progress"},
		{"middle band is silent", 60.0, ""},
		{"just below 80", 79.9, ""},
		{"exactly 80", 80.0, "Excellent progress in Social Skills - maintain current approach"},
		{"perfect", 100.0, "Excellent progress in Social Skills - maintain current approach"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := RecommendForDomain(models.DomainSocialSkills, tc.score)
			assert.Equal(t, tc.want, rec.Message)
			assert.Empty(t, rec.Alert)
		})
	}
}

func TestRecommendForDomainBehaviorAlert(t *testing.T) {
	rec := RecommendForDomain(models.DomainBehavior, 33.3)
	assert.Equal(t, "Focus more on Behavior - current progress is below expectations", rec.Message)
	assert.Equal(t, "Behavioral concerns detected - score: 33.3%", rec.Alert)

	// No alert once behavior clears the threshold.
	rec = RecommendForDomain(models.DomainBehavior, 40.0)
	assert.Empty(t, rec.Alert)

	// Other domains never alert, however low the score.
	rec = RecommendForDomain(models.DomainCognitiveSkills, 10.0)
	assert.Empty(t, rec.Alert)
}

func TestHumanizeDomain(t *testing.T) {
	assert.Equal(t, "Daily Living Skills", humanizeDomain(models.DomainDailyLivingSkills))
	assert.Equal(t, "Behavior", humanizeDomain(models.DomainBehavior))
	assert.Equal(t, "Therapy Participation", humanizeDomain(models.DomainTherapyParticipation))
}
