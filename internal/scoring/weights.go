package scoring

import (
	"fmt"
	"math"
)

// OverallWeights defines how much each section contributes to the overall score.
// All weights must sum to 1.0 (±0.001 tolerance).
type OverallWeights struct {
	Psychometric float64
	Technical    float64
	WISCAR       float64
}

// DefaultOverallWeights returns the 30/35/35 policy split.
func DefaultOverallWeights() OverallWeights {
	return OverallWeights{
		Psychometric: 0.30,
		Technical:    0.35,
		WISCAR:       0.35,
	}
}

// Sum returns the total of all weights.
func (w OverallWeights) Sum() float64 {
	return w.Psychometric + w.Technical + w.WISCAR
}

// Validate checks that weights are finite, sum to 1.0 and none are negative.
func (w OverallWeights) Validate() error {
	for _, v := range []float64{w.Psychometric, w.Technical, w.WISCAR} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("overall weight must be finite, got %f", v)
		}
	}
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("overall weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Psychometric, w.Technical, w.WISCAR} {
		if v < 0 {
			return fmt.Errorf("negative overall weight: %f", v)
		}
	}
	return nil
}

// OverallScore combines the section scores with the mean of the six WISCAR
// dimensions.
func OverallScore(psychometric, technical int, wiscar WISCARScores, w OverallWeights) int {
	overall := float64(psychometric)*w.Psychometric +
		float64(technical)*w.Technical +
		wiscar.Mean()*w.WISCAR
	return clampScore(round(overall))
}
