package pairedt

import (
	"math"

	"gopaired/domain/core"
	"gopaired/ports"
)

// DegreesOfFreedom is n - 1 for a paired test
func DegreesOfFreedom(n int) int {
	return n - 1
}

// StandardError is stdDev / sqrt(n)
func StandardError(stdDev float64, n int) (float64, error) {
	if n < 1 {
		return 0, core.ErrEmptyInput
	}
	return stdDev / math.Sqrt(float64(n)), nil
}

// TValue is mean / standardError. A zero standard error means every
// difference is identical and the statistic is undefined.
func TValue(mean, standardError float64) (float64, error) {
	if standardError == 0 {
		return 0, core.NewZeroVarianceError("all paired differences are identical, so the t-statistic is undefined")
	}
	t := mean / standardError
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, core.NewZeroVarianceError("the t-statistic is not a finite number")
	}
	return t, nil
}

// CriticalT is the two-tailed critical value at probability 1 - alpha/2
func CriticalT(dist ports.TDistributionPort, alpha float64, df int) (float64, error) {
	if df < 1 {
		return 0, core.NewInvalidDegreesOfFreedomError(df)
	}
	if !(alpha > 0 && alpha < 1) {
		return 0, core.NewValidationError("significance level alpha must be between 0 and 1")
	}
	return dist.InverseStudentT(1-alpha/2, df)
}

// TwoTailedPValue is 2 * (1 - CDF(|t|))
func TwoTailedPValue(dist ports.TDistributionPort, t float64, df int) (float64, error) {
	if df < 1 {
		return 0, core.NewInvalidDegreesOfFreedomError(df)
	}
	cdf, err := dist.StudentTCDF(math.Abs(t), df)
	if err != nil {
		return 0, err
	}
	return math.Min(1, math.Max(0, 2*(1-cdf))), nil
}

// ConfidenceInterval is mean ± criticalT * standardError
func ConfidenceInterval(mean, criticalT, standardError float64) (lower, upper float64) {
	margin := criticalT * standardError
	return mean - margin, mean + margin
}

// IsSignificant applies the decision rule |t| > criticalT
func IsSignificant(tValue, criticalT float64) bool {
	return math.Abs(tValue) > criticalT
}
