package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

func ratingPtr(r models.Rating) *models.Rating {
	return &r
}

func TestCalculateDomainScoreAllGood(t *testing.T) {
	assessment := &models.Behavior{
		Aggression:      ratingPtr(models.RatingGood),
		SelfInjury:      ratingPtr(models.RatingGood),
		ThrowingObjects: ratingPtr(models.RatingGood),
	}

	score := CalculateDomainScore(assessment)
	assert.Equal(t, 100.0, score.Score)
	assert.Equal(t, 3, score.Good)
	assert.Equal(t, 3, score.Total)
}

func TestCalculateDomainScoreAllNoImprovement(t *testing.T) {
	assessment := &models.SensoryProcessing{
		Stimming:       ratingPtr(models.RatingNoImprovement),
		SensorySeeking: ratingPtr(models.RatingNoImprovement),
	}

	score := CalculateDomainScore(assessment)
	assert.Equal(t, 33.3, score.Score)
	assert.Equal(t, 2, score.NoImprovement)
	assert.Equal(t, 2, score.Total)
}

func TestCalculateDomainScoreMixedRatings(t *testing.T) {
	// good=3, average=2, no_improvement=1: (3+2+1)/(3*3)*100 = 66.7
	assessment := &models.CognitiveSkills{
		AttentionSpan:  ratingPtr(models.RatingGood),
		Focus:          ratingPtr(models.RatingAverage),
		ProblemSolving: ratingPtr(models.RatingNoImprovement),
	}

	score := CalculateDomainScore(assessment)
	assert.Equal(t, 66.7, score.Score)
	assert.Equal(t, 1, score.Good)
	assert.Equal(t, 1, score.Average)
	assert.Equal(t, 1, score.NoImprovement)
	assert.Equal(t, 3, score.Total)
}

func TestCalculateDomainScoreIgnoresUnknownRatings(t *testing.T) {
	assessment := &models.DailyLivingSkills{
		Dressing:       ratingPtr(models.RatingGood),
		ToiletTraining: ratingPtr(models.Rating("excellent")),
	}

	score := CalculateDomainScore(assessment)
	assert.Equal(t, 100.0, score.Score)
	assert.Equal(t, 1, score.Total)
}

func TestCalculateDomainScoreEmpty(t *testing.T) {
	score := CalculateDomainScore(&models.SocialSkills{})
	assert.Equal(t, 0.0, score.Score)
	assert.Equal(t, 0, score.Total)

	score = CalculateDomainScore(nil)
	assert.Equal(t, 0, score.Total)
}

func TestCalculateDomainScoreNestedCommunication(t *testing.T) {
	assessment := &models.CommunicationSkills{
		Verbal: &models.VerbalSkills{
			ExpressingNeeds: ratingPtr(models.RatingAverage),
		},
		NonVerbal: &models.NonVerbalSkills{
			EyeContact: ratingPtr(models.RatingGood),
		},
	}

	// (2+3)/(2*3)*100 = 83.3
	score := CalculateDomainScore(assessment)
	assert.Equal(t, 83.3, score.Score)
	assert.Equal(t, 2, score.Total)
}

func TestAverageScores(t *testing.T) {
	assert.Equal(t, 0.0, AverageScores(nil))
	assert.Equal(t, 50.0, AverageScores([]float64{50}))
	assert.Equal(t, 66.7, AverageScores([]float64{100, 50, 50}))
}
