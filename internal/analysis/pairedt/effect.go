package pairedt

import (
	"math"

	"gopaired/domain/core"
)

// CohensD is (mean(x) - mean(y)) / stdDev(x).
//
// The denominator is the first condition's own standard deviation, not a
// pooled SD. Reports built on earlier versions depend on this variant.
func CohensD(x, y []float64) (float64, error) {
	meanX, err := Mean(x)
	if err != nil {
		return 0, err
	}
	meanY, err := Mean(y)
	if err != nil {
		return 0, err
	}
	dispX, err := StandardDeviationAround(x, meanX)
	if err != nil {
		return 0, err
	}
	if dispX.StdDev == 0 {
		return 0, core.NewZeroVarianceError("the first condition has no variation, so Cohen's d is undefined")
	}
	return (meanX - meanY) / dispX.StdDev, nil
}

// EffectMagnitude labels |d| with Cohen's conventional thresholds
func EffectMagnitude(d float64) string {
	switch abs := math.Abs(d); {
	case abs < 0.2:
		return "negligible"
	case abs < 0.5:
		return "small"
	case abs < 0.8:
		return "medium"
	default:
		return "large"
	}
}
