package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

func TestClassifyTrend(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
		want   models.Trend
	}{
		{"empty", nil, models.TrendInsufficientData},
		{"single point", []float64{50}, models.TrendInsufficientData},
		{"flat", []float64{50, 50, 50, 50}, models.TrendStable},
		{"improving", []float64{40, 40, 80, 80}, models.TrendImproving},
		{"declining", []float64{90, 10}, models.TrendDeclining},
		// odd length splits at floor(n/2): [10] vs [20, 30]
		{"odd length improving", []float64{10, 20, 30}, models.TrendImproving},
		{"two equal points", []float64{60, 60}, models.TrendStable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyTrend(tc.scores))
		})
	}
}
