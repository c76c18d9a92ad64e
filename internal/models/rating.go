package models

// Rating is a qualitative assessment value for one observed item within a
// developmental domain.
type Rating string

const (
	RatingGood          Rating = "good"
	RatingAverage       Rating = "average"
	RatingNoImprovement Rating = "no_improvement"
)

// Known reports whether the value belongs to the rating enumeration.
// Unrecognised values are excluded from scoring, never rejected.
func (r Rating) Known() bool {
	switch r {
	case RatingGood, RatingAverage, RatingNoImprovement:
		return true
	default:
		return false
	}
}

// Weight returns the report-scoring weight: good=3, average=2,
// no_improvement=1. Unknown ratings weigh 0 and are not counted.
func (r Rating) Weight() int {
	switch r {
	case RatingGood:
		return 3
	case RatingAverage:
		return 2
	case RatingNoImprovement:
		return 1
	default:
		return 0
	}
}

// FlatPercent returns the flat percentage used by the single-session view
// (good=100, average=60, no_improvement=20). The second result is false for
// unknown ratings. This scale is independent of the weighted report score.
func (r Rating) FlatPercent() (int, bool) {
	switch r {
	case RatingGood:
		return 100, true
	case RatingAverage:
		return 60, true
	case RatingNoImprovement:
		return 20, true
	default:
		return 0, false
	}
}
