package models

// DomainScore is the derived summary of one domain's ratings in one session.
// It is computed per report request and never stored. Total == 0 means the
// domain was not assessed, not that progress was zero.
type DomainScore struct {
	Score         float64 `json:"score"`
	Good          int     `json:"good"`
	Average       int     `json:"average"`
	NoImprovement int     `json:"no_improvement"`
	Total         int     `json:"total"`
}

// Trend classifies a domain's trajectory across a sequence of session scores.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendDeclining        Trend = "declining"
	TrendStable           Trend = "stable"
	TrendInsufficientData Trend = "insufficient_data"
)
